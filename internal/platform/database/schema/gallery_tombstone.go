package schema

// GalleryTombstoneTable represents the 'gallery.tombstone' table
type GalleryTombstoneTable struct {
	Table     string
	ID        string
	DeletedAt string
}

// GalleryTombstone is the schema definition for gallery.tombstone
var GalleryTombstone = GalleryTombstoneTable{
	Table:     "gallery.tombstone",
	ID:        "id",
	DeletedAt: "deletedat",
}

func (t GalleryTombstoneTable) Columns() []string {
	return []string{t.ID, t.DeletedAt}
}
