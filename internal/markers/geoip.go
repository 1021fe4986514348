package markers

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"goworld/internal/geom"
)

// Resolver locates an IP address.
type Resolver interface {
	Resolve(ip net.IP) (geom.Point, error)
}

// cityReader is the part of *geoip2.Reader a GeoIP resolver needs.
type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// GeoIP resolves addresses through a MaxMind City database. Lookups are
// cached per address.
type GeoIP struct {
	db    cityReader
	cache map[string]geom.Point
}

// OpenGeoIP opens a GeoLite2/GeoIP2 City database file.
func OpenGeoIP(path string) (*GeoIP, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: %w", err)
	}
	return newGeoIP(db), nil
}

func newGeoIP(db cityReader) *GeoIP {
	return &GeoIP{db: db, cache: make(map[string]geom.Point)}
}

func (g *GeoIP) Resolve(ip net.IP) (geom.Point, error) {
	key := ip.String()
	if p, ok := g.cache[key]; ok {
		return p, nil
	}
	rec, err := g.db.City(ip)
	if err != nil {
		return geom.Point{}, fmt.Errorf("geoip %s: %w", key, err)
	}
	// MaxMind reports 0,0 for addresses it has no location for.
	if rec.Location.Latitude == 0 && rec.Location.Longitude == 0 {
		return geom.Point{}, fmt.Errorf("geoip %s: no location", key)
	}
	p := geom.Point{rec.Location.Longitude, rec.Location.Latitude}
	g.cache[key] = p
	return p, nil
}

func (g *GeoIP) Close() error {
	return g.db.Close()
}
