package seed

import (
	"embed"
	"encoding/json"
	"log"
	"sync"

	"valia_backend/internal/model"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// Source supplies the initial dataset for a collection that has never been
// written. Implementations must return the same records on every call.
type Source interface {
	Properties() []model.Property
	Agents() []model.Agent
	Inquiries() []model.Inquiry
	Bookings() []model.Booking
}

// Fixtures returns the embedded seed datasets. Each fixture is decoded once
// per process; one that fails to decode yields an empty collection so the
// system stays usable with zero records.
func Fixtures() Source {
	return &fixtures{}
}

type fixtures struct {
	once       sync.Once
	properties []model.Property
	agents     []model.Agent
	inquiries  []model.Inquiry
	bookings   []model.Booking
}

func (f *fixtures) load() {
	f.once.Do(func() {
		decode("fixtures/properties.json", &f.properties)
		decode("fixtures/agents.json", &f.agents)
		decode("fixtures/inquiries.json", &f.inquiries)
		decode("fixtures/bookings.json", &f.bookings)
	})
}

func decode[T any](name string, out *[]T) {
	data, err := fixturesFS.ReadFile(name)
	if err != nil {
		log.Printf("seed: missing fixture %s: %v", name, err)
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("seed: could not decode %s: %v", name, err)
		*out = nil
	}
}

func (f *fixtures) Properties() []model.Property {
	f.load()
	return f.properties
}

func (f *fixtures) Agents() []model.Agent {
	f.load()
	return f.agents
}

func (f *fixtures) Inquiries() []model.Inquiry {
	f.load()
	return f.inquiries
}

func (f *fixtures) Bookings() []model.Booking {
	f.load()
	return f.bookings
}
