package loader

import (
	"encoding/json"
	"io"

	"github.com/lintang-b-s/transitcatalogue/pkg"
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/concurrent"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"go.uber.org/zap"
)

const (
	notFoundMessage     = "not found"
	notSupportedMessage = "not supported"
)

// QueryEngine. query side of the engine
type QueryEngine interface {
	GetBusInfo(name string) (catalogue.BusInfo, bool)
	GetStopInfo(name string) ([]string, bool)
	FindRoute(from, to string) (routing.RouteInfo, bool, error)
}

type BusResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type RouteItemResponse struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

type RouteResponse struct {
	RequestID int                 `json:"request_id"`
	TotalTime float64             `json:"total_time"`
	Items     []RouteItemResponse `json:"items"`
}

type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// Answer. answer every stat request on a pool of workers. the i-th response belongs to the i-th request
func Answer(eng QueryEngine, reqs []StatRequest, workers int, log *zap.Logger) []any {
	if workers < 1 {
		workers = 1
	}
	return concurrent.RunOrdered(workers, reqs, func(req StatRequest) any {
		return answerOne(eng, req, log)
	})
}

func answerOne(eng QueryEngine, req StatRequest, log *zap.Logger) any {
	switch req.Type {
	case requestTypeBus:
		info, ok := eng.GetBusInfo(req.Name)
		if !ok {
			return ErrorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		return BusResponse{
			RequestID:       req.ID,
			Curvature:       info.Curvature,
			RouteLength:     info.RouteLength,
			StopCount:       info.StopsCount,
			UniqueStopCount: info.UniqueStopsCount,
		}
	case requestTypeStop:
		buses, ok := eng.GetStopInfo(req.Name)
		if !ok {
			return ErrorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		return StopResponse{RequestID: req.ID, Buses: buses}
	case requestTypeRoute:
		route, ok, err := eng.FindRoute(req.From, req.To)
		if err != nil {
			log.Error("route request failed", zap.Int("request_id", req.ID), zap.Error(err))
			return ErrorResponse{RequestID: req.ID, ErrorMessage: err.Error()}
		}
		if !ok {
			return ErrorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		return newRouteResponse(req.ID, route)
	default:
		return ErrorResponse{RequestID: req.ID, ErrorMessage: notSupportedMessage}
	}
}

func newRouteResponse(id int, route routing.RouteInfo) RouteResponse {
	items := make([]RouteItemResponse, 0, len(route.Items))
	for _, item := range route.Items {
		resp := RouteItemResponse{Type: item.Kind.String(), Time: item.Time}
		if item.Kind == pkg.WAIT {
			resp.StopName = item.Name
		} else {
			resp.Bus = item.Name
			resp.SpanCount = item.SpanCount
		}
		items = append(items, resp)
	}
	return RouteResponse{RequestID: id, TotalTime: route.TotalTime, Items: items}
}

func WriteResponses(w io.Writer, responses []any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(responses)
}
