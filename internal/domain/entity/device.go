package entity

// Estados habituales de un dispositivo. El servidor acepta cualquier texto; estos son los que usa la consola.
const (
	DeviceStatusActive      = "active"
	DeviceStatusMaintenance = "maintenance"
	DeviceStatusRetired     = "retired"
)

// Device representa un equipo asignado a un departamento.
type Device struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DepartmentID int64  `json:"departmentId"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	Del          int    `json:"del,omitempty"`
}
