package entities

type BookingEmailData struct {
	UserName           string
	BookingCode        string
	FacilityName       string
	SlotNumber         string
	VehicleNumber      string
	EntryTimeFormatted string
	ExitTimeFormatted  string
	Amount             int
	QRCode             string
	CurrentYear        int
}
