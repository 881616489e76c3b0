package domain

import (
	"time"
)

type TestDriveStatus string

const (
	TestDrivePending   TestDriveStatus = "pending"
	TestDriveApproved  TestDriveStatus = "approved"
	TestDriveCompleted TestDriveStatus = "completed"
	TestDriveCancelled TestDriveStatus = "cancelled"
)

func (s TestDriveStatus) Valid() bool {
	switch s {
	case TestDrivePending, TestDriveApproved, TestDriveCompleted, TestDriveCancelled:
		return true
	}
	return false
}

// TestDriveRequest is what a customer submits from the car details page.
type TestDriveRequest struct {
	VehicleID int64  `json:"vehicle_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Message   string `json:"message,omitempty" validate:"max=1000"`
}

type TestDrive struct {
	ID        int64           `json:"id"`
	Vehicle   Vehicle         `json:"vehicle"`
	User      *User           `json:"user,omitempty"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Phone     string          `json:"phone"`
	Message   string          `json:"message,omitempty"`
	Status    TestDriveStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// DashboardStats summarises the owner dashboard header.
type DashboardStats struct {
	Cars       int `json:"cars"`
	TestDrives int `json:"test_drives"`
	Pending    int `json:"pending"`
	Approved   int `json:"approved"`
}
