package entity

// TimeLayout formato de createTime/updateTime que usa el backend.
const TimeLayout = "2006-01-02 15:04:05"

// Employee representa un empleado tal como lo expone el backend administrativo.
// DepartmentName es un campo de presentación calculado por el servidor; nunca se envía.
type Employee struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Position       string `json:"position"`
	DepartmentID   int64  `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Del            int    `json:"del,omitempty"`
	CreateTime     string `json:"createTime,omitempty"`
	UpdateTime     string `json:"updateTime,omitempty"`
}
