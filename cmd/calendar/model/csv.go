package model

// EventCSV is one row of an import document.
type EventCSV struct {
	Event string `csv:"event"`
	Date  string `csv:"date"`
}

// EventExportCSV is one row of an export document.
type EventExportCSV struct {
	ID    uint   `csv:"id"`
	Event string `csv:"event"`
	Date  string `csv:"date"`
}

func NewEventExportCSV(e Event) EventExportCSV {
	return EventExportCSV{
		ID:    e.ID,
		Event: e.Name,
		Date:  FormatDate(e.Date),
	}
}
