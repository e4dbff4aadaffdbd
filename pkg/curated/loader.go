package curated

import (
	"fmt"

	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/spf13/viper"
)

type distanceRecord struct {
	From string  `mapstructure:"from"`
	To   string  `mapstructure:"to"`
	Km   float64 `mapstructure:"km"`
	// one_way: only the from->to direction is stored
	OneWay bool `mapstructure:"one_way"`
}

type intermediatesRecord struct {
	From   string              `mapstructure:"from"`
	To     string              `mapstructure:"to"`
	Points []IntermediatePoint `mapstructure:"points"`
}

type namesRecord struct {
	From  string   `mapstructure:"from"`
	To    string   `mapstructure:"to"`
	Names []string `mapstructure:"names"`
}

type roadsRecord struct {
	From    string   `mapstructure:"from"`
	To      string   `mapstructure:"to"`
	Variant string   `mapstructure:"variant"`
	Names   []string `mapstructure:"names"`
}

type tollsRecord struct {
	From    string         `mapstructure:"from"`
	To      string         `mapstructure:"to"`
	Entries []da.TollEntry `mapstructure:"entries"`
}

type tablesFile struct {
	Distances      []distanceRecord      `mapstructure:"distances"`
	Intermediates  []intermediatesRecord `mapstructure:"intermediates"`
	NamedWaypoints []namesRecord         `mapstructure:"named_waypoints"`
	AreaNames      []namesRecord         `mapstructure:"area_names"`
	Roads          []roadsRecord         `mapstructure:"roads"`
	Tolls          []tollsRecord         `mapstructure:"tolls"`
	Cities         []City                `mapstructure:"cities"`
}

// LoadTables. built-in defaults with the yaml/json file at path merged on top.
// empty path returns the defaults.
func LoadTables(path string) (*Tables, error) {
	b := DefaultTablesBuilder()
	if path == "" {
		return b.Build(), nil
	}
	if err := ApplyFile(b, path); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func ApplyFile(b *TablesBuilder, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read curated tables %s: %w", path, err)
	}

	var f tablesFile
	if err := v.Unmarshal(&f); err != nil {
		return fmt.Errorf("decode curated tables %s: %w", path, err)
	}

	for _, d := range f.Distances {
		if d.OneWay {
			b.AddDistance(d.From, d.To, d.Km)
		} else {
			b.AddSymmetricDistance(d.From, d.To, d.Km)
		}
	}
	for _, r := range f.Intermediates {
		b.AddIntermediates(r.From, r.To, r.Points...)
	}
	for _, r := range f.NamedWaypoints {
		b.AddNamedWaypoints(r.From, r.To, r.Names...)
	}
	for _, r := range f.AreaNames {
		b.AddAreaNames(r.From, r.To, r.Names...)
	}
	for _, r := range f.Roads {
		b.AddRoads(r.From, r.To, r.Variant, r.Names...)
	}
	for _, r := range f.Tolls {
		b.AddTolls(r.From, r.To, r.Entries...)
	}
	for _, c := range f.Cities {
		b.AddCity(c.Name, c.Lat, c.Lon)
	}
	return nil
}
