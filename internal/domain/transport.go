package domain

import "time"

// TransportRoute is one bus route with a fixed capacity
type TransportRoute struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Name       string    `gorm:"size:128" json:"name"`
	VehicleNo  string    `gorm:"size:32" json:"vehicle_no"`
	DriverName string    `gorm:"size:128" json:"driver_name"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (TransportRoute) TableName() string {
	return "transport_routes"
}

// TransportAssignment puts one student on one route at a named stop
type TransportAssignment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RouteID   string    `gorm:"size:64;index" json:"route_id"`
	StudentID string    `gorm:"size:64;uniqueIndex" json:"student_id"`
	Stop      string    `gorm:"size:128" json:"stop"`
	CreatedAt time.Time `json:"created_at"`
}

func (TransportAssignment) TableName() string {
	return "transport_assignments"
}

// CreateRouteRequest registers a transport route
type CreateRouteRequest struct {
	Name       string `json:"name" binding:"required"`
	VehicleNo  string `json:"vehicle_no" binding:"required"`
	DriverName string `json:"driver_name"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

// AssignStudentRequest puts a student on a route
type AssignStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Stop      string `json:"stop" binding:"required"`
}
