package entity

// Department representa un departamento. Del, CreateTime y UpdateTime son de auditoría
// y los gestiona el servidor (Del = 1 indica borrado lógico).
type Department struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	ParentID    int64  `json:"parentId,omitempty"`
	Description string `json:"description,omitempty"`
	Del         int    `json:"del,omitempty"`
	CreateTime  string `json:"createTime,omitempty"`
	UpdateTime  string `json:"updateTime,omitempty"`
}
