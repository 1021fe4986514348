package markers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"strconv"
	"strings"

	"goworld/internal/geom"
)

type block int

const (
	noBlock block = iota
	pointsBlock
	trackBlock
	circlesBlock
)

var headers = map[string]block{
	"points":  pointsBlock,
	"track":   trackBlock,
	"circles": circlesBlock,
}

// Parser reads marker sources. The zero value is ready to use.
type Parser struct {
	// Resolver, when set, lets a points or track line hold an IP address
	// instead of "<lat> <lon>".
	Resolver Resolver
	Logger   *log.Logger
}

func (p *Parser) logf(format string, v ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, v...)
	}
}

// Parse reads the plain text marker format from r.
func Parse(r io.Reader) (*Set, error) {
	set := &Set{}
	if err := (&Parser{}).Read(r, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Read parses the plain text marker format into set.
//
// A line "points", "track" or "circles" starts a block, a line "." ends it.
// Inside points and track blocks data lines are "<lat> <lon>", inside a
// circles block "<lat> <lon> <radius>". Every track block is one track.
// Lines that do not parse, and data lines outside a block, are counted in
// set.Skipped. Blank lines and lines starting with '#' are ignored.
func (p *Parser) Read(r io.Reader, set *Set) error {
	var (
		mode    = noBlock
		track   []geom.Point
		inTrack bool
		lineNo  int
	)
	flush := func() {
		if inTrack {
			set.AddTrack(track)
			track, inTrack = nil, false
		}
	}
	skip := func(text, why string) {
		set.Skipped++
		p.logf("markers: line %d %q skipped: %s", lineNo, text, why)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if text == "." {
			flush()
			mode = noBlock
			continue
		}
		if b, ok := headers[text]; ok {
			flush()
			mode = b
			inTrack = b == trackBlock
			continue
		}

		switch mode {
		case pointsBlock, trackBlock:
			pt, err := p.position(text)
			if err != nil {
				skip(text, err.Error())
				continue
			}
			if mode == pointsBlock {
				set.AddPoint(pt)
			} else {
				track = append(track, pt)
			}
		case circlesBlock:
			f := strings.Fields(text)
			if len(f) < 3 {
				skip(text, "want <lat> <lon> <radius>")
				continue
			}
			pt, err := latLon(f[0], f[1])
			if err != nil {
				skip(text, err.Error())
				continue
			}
			radius, err := parseFinite(f[2])
			if err != nil {
				skip(text, err.Error())
				continue
			}
			set.AddCircle(pt, radius)
		default:
			skip(text, "outside of a block")
		}
	}
	flush()
	return sc.Err()
}

// position reads "<lat> <lon>", or a bare IP address when a resolver is set.
func (p *Parser) position(text string) (geom.Point, error) {
	f := strings.Fields(text)
	if len(f) == 1 && p.Resolver != nil {
		ip := net.ParseIP(f[0])
		if ip == nil {
			return geom.Point{}, errors.New("not an IP address")
		}
		return p.Resolver.Resolve(ip)
	}
	if len(f) < 2 {
		return geom.Point{}, errors.New("want <lat> <lon>")
	}
	return latLon(f[0], f[1])
}

func latLon(lat, lon string) (geom.Point, error) {
	la, err := parseFinite(lat)
	if err != nil {
		return geom.Point{}, err
	}
	lo, err := parseFinite(lon)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{lo, la}, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
