package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"triptracker/internal/domain"
)

// Config holds everything one pipeline invocation needs: input paths, the
// trip settings, and the output destination.
type Config struct {
	AccountsPath string
	ContactsPath string

	// OutputPath is a .xlsx file for Format "xlsx", a directory for "csv".
	OutputPath string
	Format     string // "xlsx" or "csv"

	Trip    domain.TripConfig
	Verbose bool
}

// TripFile is the optional YAML trip-settings file. Values set on the
// command line take precedence over it.
type TripFile struct {
	TripName           string   `yaml:"trip_name"`
	City               string   `yaml:"city"`
	Start              string   `yaml:"start"`
	End                string   `yaml:"end"`
	Seed               string   `yaml:"seed"`
	Owners             []string `yaml:"owners"`
	TimeSlots          []string `yaml:"time_slots"`
	Statuses           []string `yaml:"statuses"`
	AddressPlaceholder string   `yaml:"address_placeholder"`
}

// LoadTripFile reads and parses a YAML trip-settings file.
func LoadTripFile(path string) (TripFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return TripFile{}, fmt.Errorf("trip config: %w", err)
	}
	var tf TripFile
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return TripFile{}, fmt.Errorf("trip config %s: %w", path, err)
	}
	return tf, nil
}

// Apply copies the file's values into trip, filling only fields the command
// line left empty.
func (tf TripFile) Apply(trip *domain.TripConfig) error {
	if trip.TripName == "" {
		trip.TripName = tf.TripName
	}
	if trip.City == "" {
		trip.City = tf.City
	}
	if trip.Seed == "" {
		trip.Seed = tf.Seed
	}
	if len(trip.Owners) == 0 {
		trip.Owners = tf.Owners
	}
	if len(trip.TimeSlots) == 0 {
		trip.TimeSlots = tf.TimeSlots
	}
	if len(trip.Statuses) == 0 {
		for _, s := range tf.Statuses {
			trip.Statuses = append(trip.Statuses, domain.Status(s))
		}
	}
	if trip.AddressPlaceholder == "" {
		trip.AddressPlaceholder = tf.AddressPlaceholder
	}
	if trip.TripStart.IsZero() && tf.Start != "" {
		t, err := ParseDate(tf.Start)
		if err != nil {
			return err
		}
		trip.TripStart = t
	}
	if trip.TripEnd.IsZero() && tf.End != "" {
		t, err := ParseDate(tf.End)
		if err != nil {
			return err
		}
		trip.TripEnd = t
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD trip date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &domain.ConfigError{
			Param:  "trip dates",
			Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", s),
		}
	}
	return t, nil
}
