package model

type UserRole string

const (
	Parent     UserRole = "parent"
	Child      UserRole = "child"
	Admin      UserRole = "admin"
	SuperAdmin UserRole = "superadmin"
)

// User accounts are created and approved by the account service; this
// service only reads them, mainly to walk the parent-child link.
type User struct {
	BaseModel
	FullName   string   `gorm:"size:100;not null" json:"fullName"`
	Email      string   `gorm:"size:100;unique;not null" json:"email"`
	Role       UserRole `gorm:"type:enum('parent','child','admin','superadmin');default:'child'" json:"role"`
	ParentID   *uint    `gorm:"index" json:"parentId,omitempty"`
	Age        int      `gorm:"default:0" json:"age"`
	GradeLevel string   `gorm:"size:20" json:"gradeLevel"`
}

func (User) TableName() string {
	return "users"
}

// ChildSummary is the read-only slice of a child account exposed to the
// parent-facing views.
type ChildSummary struct {
	ID         uint   `json:"id"`
	FullName   string `json:"fullName"`
	Age        int    `json:"age"`
	GradeLevel string `json:"gradeLevel"`
}
