// Package fixture 內嵌各資料槽的初始資料，slot 不存在時用來 seed
package fixture

import (
	"embed"
	"encoding/json"
	"fmt"

	"hrdesk/internal/model"
)

//go:embed data/*.json
var files embed.FS

func decode[T any](name string) ([]T, error) {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return items, nil
}

func Employees() ([]model.Employee, error) { return decode[model.Employee]("employees.json") }

func Attendance() ([]model.AttendanceRecord, error) {
	return decode[model.AttendanceRecord]("attendance.json")
}

func Users() ([]model.DashboardUser, error) { return decode[model.DashboardUser]("users.json") }

func Complaints() ([]model.Complaint, error) { return decode[model.Complaint]("complaints.json") }

func Applications() ([]model.LeaveApplication, error) {
	return decode[model.LeaveApplication]("applications.json")
}

func Events() ([]model.EventRecord, error) { return decode[model.EventRecord]("events.json") }

func Calendar() ([]model.CalendarEvent, error) { return decode[model.CalendarEvent]("calendar.json") }

func Inventory() ([]model.InventoryItem, error) { return decode[model.InventoryItem]("inventory.json") }

func Abandoned() ([]model.AbandonedItem, error) { return decode[model.AbandonedItem]("abandoned.json") }

// Departments 部門為唯讀資料，不進 slot
func Departments() ([]model.Department, error) { return decode[model.Department]("departments.json") }
