package loader

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
)

const (
	requestTypeStop  = "Stop"
	requestTypeBus   = "Bus"
	requestTypeRoute = "Route"
	requestTypeMap   = "Map"
)

// Document. request document: catalogue content, routing settings and the queries to answer
type Document struct {
	BaseRequests    []BaseRequest    `json:"base_requests" validate:"omitempty,dive"`
	RoutingSettings *RoutingSettings `json:"routing_settings"`
	RenderSettings  json.RawMessage  `json:"render_settings,omitempty"`
	StatRequests    []StatRequest    `json:"stat_requests" validate:"omitempty,dive"`
}

// BaseRequest. either a stop (coordinates + road distances to other stops) or a bus (stop names)
type BaseRequest struct {
	Type          string         `json:"type" validate:"required,oneof=Stop Bus"`
	Name          string         `json:"name" validate:"required"`
	Latitude      float64        `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64        `json:"longitude" validate:"min=-180,max=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"omitempty,dive,gte=0"`
	Stops         []string       `json:"stops"`
	IsRoundtrip   bool           `json:"is_roundtrip"`
}

type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time" validate:"gte=0"`
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0"`
}

type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Route Map"`
	Name string `json:"name" validate:"required_if=Type Bus,required_if=Type Stop"`
	From string `json:"from" validate:"required_if=Type Route"`
	To   string `json:"to" validate:"required_if=Type Route"`
}

// OpenDocument. open a request document file, transparently decompressing *.bz2
func OpenDocument(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".bz2") {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &bz2File{Reader: bz, file: f}, nil
}

type bz2File struct {
	*bzip2.Reader
	file *os.File
}

func (b *bz2File) Close() error {
	bzErr := b.Reader.Close()
	if err := b.file.Close(); err != nil {
		return err
	}
	return bzErr
}

func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode request document")
	}
	if err := util.NewValidator().Struct(doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
