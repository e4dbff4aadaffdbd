package curated

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

const jasaMarga = "Jasa Marga"

func toll(name string, cost float64) da.TollEntry {
	return da.NewTollEntry(name, jasaMarga, cost, "")
}

// DefaultTables. built-in East/West Java data set.
func DefaultTables() *Tables {
	return DefaultTablesBuilder().Build()
}

func DefaultTablesBuilder() *TablesBuilder {
	b := NewTablesBuilder()

	// road distances (km)
	b.AddSymmetricDistance("Surabaya", "Gresik", 32.5).
		AddSymmetricDistance("Surabaya", "Sidoarjo", 25.0).
		AddSymmetricDistance("Surabaya", "Malang", 95.0).
		AddSymmetricDistance("Surabaya", "Mojokerto", 50.0).
		AddSymmetricDistance("Surabaya", "Lamongan", 47.0).
		AddSymmetricDistance("Surabaya", "Probolinggo", 76.0).
		AddSymmetricDistance("Jakarta", "Bogor", 59.0).
		AddSymmetricDistance("Jakarta", "Bekasi", 28.0).
		AddSymmetricDistance("Jakarta", "Tangerang", 25.0).
		AddSymmetricDistance("Jakarta", "Bandung", 151.0).
		AddSymmetricDistance("Yogyakarta", "Solo", 65.0).
		AddSymmetricDistance("Yogyakarta", "Semarang", 110.0).
		AddSymmetricDistance("Bandung", "Cimahi", 15.0)

	b.AddIntermediates("Bondowoso", "Kota Malang",
		IntermediatePoint{"Kabupaten Situbondo", -7.7052, 113.9931},
		IntermediatePoint{"Kabupaten Jember", -8.1845, 113.6681},
		IntermediatePoint{"Kabupaten Lumajang", -8.1182, 113.2226},
		IntermediatePoint{"Kabupaten Probolinggo", -7.7764, 113.2012},
		IntermediatePoint{"Pandaan", -7.6488, 112.6858},
	)
	b.AddIntermediates("Surabaya", "Malang",
		IntermediatePoint{"Sidoarjo", -7.4458, 112.7183},
		IntermediatePoint{"Porong", -7.5461, 112.6744},
		IntermediatePoint{"Pandaan", -7.6488, 112.6858},
		IntermediatePoint{"Lawang", -7.8652, 112.6955},
	)
	b.AddIntermediates("Jakarta", "Bandung",
		IntermediatePoint{"Bekasi", -6.2349, 106.9924},
		IntermediatePoint{"Karawang", -6.3227, 107.3376},
		IntermediatePoint{"Purwakarta", -6.5569, 107.4494},
		IntermediatePoint{"Padalarang", -6.8428, 107.4746},
	)

	b.AddNamedWaypoints("Surabaya", "Gresik", "Tandes", "Benowo").
		AddNamedWaypoints("Surabaya", "Sidoarjo", "Wonokromo", "Waru").
		AddNamedWaypoints("Surabaya", "Malang", "Sidoarjo", "Pandaan", "Lawang").
		AddNamedWaypoints("Surabaya", "Probolinggo", "Sidoarjo", "Pasuruan", "Kraksaan").
		AddNamedWaypoints("Jakarta", "Bandung", "Bekasi", "Purwakarta", "Cimahi").
		AddNamedWaypoints("Jakarta", "Bogor", "Depok", "Cibinong")

	b.AddAreaNames("Surabaya", "Sidoarjo", "Waru", "Gedangan").
		AddAreaNames("Surabaya", "Gresik", "Tandes", "Margomulyo", "Benowo").
		AddAreaNames("Surabaya", "Malang", "Waru", "Sidoarjo", "Porong", "Pandaan", "Lawang").
		AddAreaNames("Surabaya", "Mojokerto", "Sepanjang", "Krian", "Mojosari").
		AddAreaNames("Surabaya", "Lamongan", "Gresik", "Cerme", "Duduk Sampeyan").
		AddAreaNames("Surabaya", "Probolinggo", "Sidoarjo", "Pasuruan", "Kraksaan").
		AddAreaNames("Jakarta", "Bogor", "Depok", "Citayam", "Cibinong").
		AddAreaNames("Jakarta", "Bekasi", "Cakung", "Tambun", "Cikarang").
		AddAreaNames("Jakarta", "Tangerang", "Kalideres", "Batu Ceper", "Tanah Tinggi").
		AddAreaNames("Jakarta", "Bandung", "Bekasi", "Cikampek", "Purwakarta", "Padalarang").
		AddAreaNames("Yogyakarta", "Solo", "Klaten", "Prambanan", "Kartasura").
		AddAreaNames("Yogyakarta", "Semarang", "Magelang", "Secang", "Ambarawa", "Ungaran").
		AddAreaNames("Bandung", "Cimahi", "Pasteur", "Cihampelas", "Lembang").
		AddAreaNames("Bandung", "Jakarta", "Padalarang", "Purwakarta", "Cikampek", "Bekasi")

	b.AddRoads("Surabaya", "Gresik", "",
		"Jalan Tandes", "Jalan Margomulyo", "Jalan Tambak Osowilangun", "Jalan Gresik", "Jalan KH. Abdul Karim")
	b.AddRoads("Surabaya", "Sidoarjo", "",
		"Jalan Ahmad Yani", "Jalan Jenggolo", "Jalan Waru", "Jalan Gedangan", "Jalan Diponegoro")
	b.AddRoads("Surabaya", "Malang", "",
		"Jalan Ahmad Yani", "Tol Waru-Sidoarjo", "Tol Sidoarjo-Porong", "Tol Porong-Pandaan", "Tol Pandaan-Malang", "Jalan Raya Malang")
	b.AddRoads("Surabaya", "Mojokerto", "",
		"Jalan Raya Mastrip", "Tol Surabaya-Mojokerto", "Jalan Jayanegara", "Jalan Pemuda")
	b.AddRoads("Surabaya", "Probolinggo", "",
		"Jalan Ahmad Yani", "Tol Waru-Sidoarjo", "Tol Porong-Pandaan", "Jalan Raya Pasuruan", "Jalan Raya Probolinggo")
	b.AddRoads("Jakarta", "Bogor", "",
		"Jalan TB Simatupang", "Jalan Raya Pasar Minggu", "Tol Jagorawi", "Jalan Pajajaran", "Jalan Raya Bogor")
	b.AddRoads("Jakarta", "Bandung", "",
		"Jalan Gatot Subroto", "Tol Jakarta-Cikampek", "Tol Cipularang", "Tol Padalarang-Cileunyi", "Jalan Pasteur", "Jalan Asia Afrika")
	b.AddRoads("Jakarta", "Bekasi", "",
		"Jalan Kalimalang", "Jalan Raya Bekasi", "Jalan Ahmad Yani Bekasi")
	b.AddRoads("Bandung", "Cimahi", "",
		"Jalan Sukajadi", "Jalan Dr. Djunjunan", "Jalan Pasteur", "Jalan Cihampelas", "Jalan Cimahi")
	b.AddRoads("Yogyakarta", "Solo", "",
		"Jalan Solo", "Jalan Ring Road Timur", "Jalan Prambanan", "Jalan Yogya-Klaten", "Jalan Slamet Riyadi")
	b.AddRoads("Surabaya", "Malang", NoTollVariant,
		"Jalan Ahmad Yani", "Jalan Trosobo", "Jalan Raya Sidoarjo", "Jalan Raya Porong", "Jalan Raya Gempol",
		"Jalan Raya Bangil", "Jalan Raya Lawang", "Jalan Raya Singosari", "Jalan Raya Malang")
	b.AddRoads("Jakarta", "Bandung", NoTollVariant,
		"Jalan Raya Bogor", "Jalan Raya Puncak", "Jalan Raya Cianjur", "Jalan Raya Padalarang", "Jalan Raya Cimahi", "Jalan Pasteur")
	b.AddRoads("Jakarta", "Bandung", ScenicVariant,
		"Jalan Raya Puncak", "Panorama Puncak", "Kebun Teh Puncak", "Jalan Wisata Cianjur", "Jalur Pemandangan Lembang", "Jalan Setiabudhi")
	b.AddRoads("Yogyakarta", "Solo", ScenicVariant,
		"Jalan Kaliurang", "Jalur Gunung Merapi", "Panorama Selo", "Jalur Wisata Tawangmangu", "Jalan Karanganyar")
	b.AddRoads("Bondowoso", "Kota Malang", "",
		"Jalan Raya Bondowoso-Situbondo", "Jalan Raya Situbondo-Besuki", "Jalan Raya Besuki-Jember", "Jalan PB. Sudirman Jember",
		"Jalan Raya Tanggul", "Jalan Raya Lumajang", "Jalan Raya Pronojiwo", "Jalan Tol Malang-Pandaan", "Jalan Raya Karanglo",
		"Jalan Ahmad Yani Malang")
	b.AddRoads("Bondowoso", "Kota Malang", NoTollVariant,
		"Jalan Raya Bondowoso-Situbondo", "Jalan Raya Situbondo-Besuki", "Jalan Raya Besuki-Jember", "Jalan PB. Sudirman Jember",
		"Jalan Raya Tanggul", "Jalan Raya Lumajang", "Jalan Raya Pronojiwo", "Jalan Raya Tumpang", "Jalan Raya Wendit",
		"Jalan Letjen S. Parman Malang")
	b.AddRoads("Jember", "Kota Malang", "",
		"Jalan PB. Sudirman Jember", "Jalan Raya Tanggul", "Jalan Raya Lumajang", "Jalan Raya Candipuro", "Jalan Raya Turen",
		"Jalan Raya Kepanjen", "Jalan Raya Gadang", "Jalan Ahmad Yani Malang")
	b.AddRoads("Surabaya", "Jember", "",
		"Jalan Ahmad Yani", "Tol Waru-Sidoarjo", "Tol Sidoarjo-Porong", "Jalan Raya Pasuruan", "Jalan Raya Probolinggo",
		"Jalan Raya Situbondo", "Jalan PB. Sudirman Jember")
	b.AddRoads("Surabaya", "Banyuwangi", "",
		"Jalan Ahmad Yani", "Tol Waru-Sidoarjo", "Tol Sidoarjo-Porong", "Jalan Raya Pasuruan", "Jalan Raya Probolinggo",
		"Jalan Raya Situbondo", "Jalan Raya Ketapang", "Jalan Ikan Dorang Banyuwangi")

	b.AddTolls("Jakarta", "Bogor", toll("Jagorawi Toll Road", 15000), toll("Jakarta Inner Ring Road", 10000)).
		AddTolls("Jakarta", "Bandung", toll("Cipularang Toll Road", 35000), toll("Jakarta-Cikampek Toll Road", 25000)).
		AddTolls("Jakarta", "Bekasi", toll("Jakarta-Cikampek Toll Road", 12000)).
		AddTolls("Jakarta", "Tangerang", toll("Jakarta-Tangerang Toll Road", 11000)).
		AddTolls("Surabaya", "Sidoarjo", toll("Surabaya-Gempol Toll Road", 7500)).
		AddTolls("Surabaya", "Malang", toll("Surabaya-Malang Toll Road", 28000)).
		AddTolls("Surabaya", "Gresik", toll("MERR Toll Road", 7000)).
		AddTolls("Surabaya", "Mojokerto", toll("Surabaya-Mojokerto Toll Road", 17500)).
		AddTolls("Surabaya", "Probolinggo", toll("Surabaya-Probolinggo Toll Road", 25000)).
		AddTolls("Bandung", "Jakarta", toll("Cipularang Toll Road", 35000), toll("Jakarta-Cikampek Toll Road", 25000)).
		AddTolls("Bandung", "Cimahi", toll("Padalarang-Cileunyi Toll Road", 8000))

	// city centroids, dipakai buat snapping koordinat tanpa nama
	b.AddCity("Surabaya", -7.2575, 112.7521).
		AddCity("Malang", -7.9666, 112.6326).
		AddCity("Sidoarjo", -7.4458, 112.7183).
		AddCity("Gresik", -7.1539, 112.6561).
		AddCity("Mojokerto", -7.4722, 112.4338).
		AddCity("Lamongan", -7.1167, 112.4167).
		AddCity("Probolinggo", -7.7543, 113.2159).
		AddCity("Pasuruan", -7.6453, 112.9075).
		AddCity("Jember", -8.1845, 113.6681).
		AddCity("Banyuwangi", -8.2192, 114.3691).
		AddCity("Bondowoso", -7.9135, 113.8215).
		AddCity("Jakarta", -6.2088, 106.8456).
		AddCity("Bogor", -6.5971, 106.8060).
		AddCity("Bekasi", -6.2383, 106.9756).
		AddCity("Tangerang", -6.1783, 106.6319).
		AddCity("Bandung", -6.9175, 107.6191).
		AddCity("Cimahi", -6.8722, 107.5425).
		AddCity("Yogyakarta", -7.7956, 110.3695).
		AddCity("Solo", -7.5755, 110.8243).
		AddCity("Semarang", -6.9667, 110.4167)

	return b
}
