package schema

// GalleryOverrideTable represents the 'gallery.override' table
type GalleryOverrideTable struct {
	Table     string
	ID        string
	Payload   string
	Position  string
	UpdatedAt string
}

// GalleryOverride is the schema definition for gallery.override
var GalleryOverride = GalleryOverrideTable{
	Table:     "gallery.override",
	ID:        "id",
	Payload:   "payload",
	Position:  "position",
	UpdatedAt: "updatedat",
}

func (t GalleryOverrideTable) Columns() []string {
	return []string{t.ID, t.Payload, t.Position, t.UpdatedAt}
}
