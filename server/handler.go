package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/hashicorp/go-multierror"

	"github.com/protolambda/sphericalmercator/mercator"
)

// Handler answers conversion queries. Every query may set its own tile size with "size",
// projectors of the same size share their constants.
type Handler struct {
	Log log.Logger
}

type query struct {
	values url.Values
	err    error
}

func (q *query) float(key string) float64 {
	s := q.values.Get(key)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.err = multierror.Append(q.err, fmt.Errorf("bad %s value %q: %w", key, s, err))
	}
	return v
}

func (q *query) int(key string) int {
	s := q.values.Get(key)
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		q.err = multierror.Append(q.err, fmt.Errorf("bad %s value %q: %w", key, s, err))
	}
	return int(v)
}

func (q *query) bool(key string) bool {
	s := q.values.Get(key)
	if s == "" {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		q.err = multierror.Append(q.err, fmt.Errorf("bad %s value %q: %w", key, s, err))
	}
	return v
}

func (q *query) projection(key string) mercator.Projection {
	s := q.values.Get(key)
	if s == "" {
		return mercator.WGS84
	}
	p, err := mercator.ParseProjection(s)
	if err != nil {
		q.err = multierror.Append(q.err, fmt.Errorf("bad %s value: %w", key, err))
	}
	return p
}

func (q *query) bbox(key string) mercator.BBox {
	b, err := mercator.ParseBBox(q.values.Get(key))
	if err != nil {
		q.err = multierror.Append(q.err, fmt.Errorf("bad %s value: %w", key, err))
	}
	return b
}

// MaxTileSize bounds the "size" query value. Every distinct size keeps its constants
// for the lifetime of the process, so clients may only pick whole pixel sizes up to this.
const MaxTileSize = 4096

func (q *query) projector() *mercator.Projector {
	s := q.values.Get("size")
	if s == "" {
		return mercator.New()
	}
	size, err := strconv.ParseUint(s, 10, 16)
	if err != nil || size < 1 || size > MaxTileSize {
		q.err = multierror.Append(q.err, fmt.Errorf("bad size value %q: expected whole number in [1, %d]", s, MaxTileSize))
		return nil
	}
	return mercator.New(mercator.WithTileSize(float64(size)))
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Debug("bad query", "path", r.URL.Path, "err", err)
	w.WriteHeader(400)
	_, _ = w.Write([]byte(err.Error()))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.Log.Warn("json encoding err", "path", r.URL.Path, "err", err)
		w.WriteHeader(500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// fail maps zoom errors to 400, anything else to 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, mercator.ErrInvalidZoom) {
		h.badRequest(w, r, err)
		return
	}
	h.Log.Warn("server error", "path", r.URL.Path, "err", err)
	w.WriteHeader(500)
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type lonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// HandlePx serves /px?lon=&lat=&z=[&size=]
func (h *Handler) HandlePx(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	ll := mercator.GeoPoint{Lon: q.float("lon"), Lat: q.float("lat")}
	z := q.int("z")
	p := q.projector()
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	px, err := p.Px(ll, z)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, point{X: px.X, Y: px.Y})
}

// HandleLL serves /ll?x=&y=&z=[&size=]
func (h *Handler) HandleLL(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	px := mercator.PixelPoint{X: q.float("x"), Y: q.float("y")}
	z := q.int("z")
	p := q.projector()
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	ll, err := p.LL(px, z)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, lonLat{Lon: ll.Lon, Lat: ll.Lat})
}

// HandleBBox serves /bbox?x=&y=&z=[&tms=][&srs=][&size=]
func (h *Handler) HandleBBox(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	x, y, z := q.int("x"), q.int("y"), q.int("z")
	tms := q.bool("tms")
	srs := q.projection("srs")
	p := q.projector()
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	bbox, err := p.TileBBox(x, y, z, tms, srs)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, bbox)
}

// HandleXYZ serves /xyz?bbox=w,s,e,n&z=[&tms=][&srs=][&size=]
func (h *Handler) HandleXYZ(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	bbox := q.bbox("bbox")
	z := q.int("z")
	tms := q.bool("tms")
	srs := q.projection("srs")
	p := q.projector()
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	tr, err := p.TileRange(bbox, z, tms, srs)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, tr)
}

// HandleConvert serves /convert?bbox=w,s,e,n&to=
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	bbox := q.bbox("bbox")
	to := q.projection("to")
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	h.respond(w, r, mercator.ConvertBBox(bbox, to))
}

// HandleForward serves /forward?lon=&lat=
func (h *Handler) HandleForward(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	ll := mercator.GeoPoint{Lon: q.float("lon"), Lat: q.float("lat")}
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	xy := mercator.Forward(ll)
	h.respond(w, r, point{X: xy.Lon, Y: xy.Lat})
}

// HandleInverse serves /inverse?x=&y=
func (h *Handler) HandleInverse(w http.ResponseWriter, r *http.Request) {
	q := &query{values: r.URL.Query()}
	xy := mercator.GeoPoint{Lon: q.float("x"), Lat: q.float("y")}
	if q.err != nil {
		h.badRequest(w, r, q.err)
		return
	}
	ll := mercator.Inverse(xy)
	h.respond(w, r, lonLat{Lon: ll.Lon, Lat: ll.Lat})
}
