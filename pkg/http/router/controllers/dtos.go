package controllers

import (
	"github.com/lintang-b-s/transitcatalogue/pkg"
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"github.com/lintang-b-s/transitcatalogue/pkg/spatialindex"
)

type routeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type nearbyStopsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"gt=0,lte=100"` // km
}

type busResponse struct {
	Name            string  `json:"name"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     int     `json:"route_length"`
	Curvature       float64 `json:"curvature"`
	IsRoundtrip     bool    `json:"is_roundtrip"`
}

func NewBusResponse(name string, info catalogue.BusInfo) busResponse {
	return busResponse{
		Name:            name,
		StopCount:       info.StopsCount,
		UniqueStopCount: info.UniqueStopsCount,
		RouteLength:     info.RouteLength,
		Curvature:       info.Curvature,
		IsRoundtrip:     info.IsRoundtrip,
	}
}

type stopResponse struct {
	Name  string   `json:"name"`
	Buses []string `json:"buses"`
}

type routeItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

type routeResponse struct {
	TotalTime float64     `json:"total_time"`
	Items     []routeItem `json:"items"`
	Path      string      `json:"path"`
}

func NewRouteResponse(route routing.RouteInfo, path string) routeResponse {
	items := make([]routeItem, 0, len(route.Items))
	for _, it := range route.Items {
		item := routeItem{Type: it.Kind.String(), Time: it.Time}
		if it.Kind == pkg.WAIT {
			item.StopName = it.Name
		} else {
			item.Bus = it.Name
			item.SpanCount = it.SpanCount
		}
		items = append(items, item)
	}
	return routeResponse{
		TotalTime: route.TotalTime,
		Items:     items,
		Path:      path,
	}
}

type nearbyStop struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"` // km
}

type nearbyStopsResponse struct {
	Stops []nearbyStop `json:"stops"`
}

func NewNearbyStopsResponse(stops []spatialindex.NearbyStop) nearbyStopsResponse {
	resp := nearbyStopsResponse{Stops: make([]nearbyStop, 0, len(stops))}
	for _, s := range stops {
		c := s.GetCoordinates()
		resp.Stops = append(resp.Stops, nearbyStop{
			Name:     s.GetName(),
			Lat:      c.Lat,
			Lon:      c.Lon,
			Distance: s.Distance,
		})
	}
	return resp
}
