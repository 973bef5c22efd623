package domain

// Stand represents a physical trainer unit, optionally with a mounted bike
type Stand struct {
	ID    int64
	Code  string
	Title string // display name shown to operators

	BikeID *int64 // mounted bike, nil if the stand is bare

	// Compatibility metadata maintained by the inventory flows;
	// not consulted by seat matching.
	AxleType       *string
	CassetteSpeeds *int

	Position *float64 // sort order, proxy for closeness; nil sorts last
}

// DisplayLabel returns the operator-facing label of the stand
func (s *Stand) DisplayLabel() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Code
}

// Bike represents a bike that can be mounted on a stand
type Bike struct {
	ID          int64
	Title       string
	Owner       string
	HeightMinCm *float64
	HeightMaxCm *float64
}

// HasHeightRange returns true if both height bounds are known
func (b *Bike) HasHeightRange() bool {
	return b.HeightMinCm != nil && b.HeightMaxCm != nil
}

// Client represents a rider profile from the client directory
type Client struct {
	ID           int64
	FirstName    string
	LastName     string
	Height       *float64 // cm
	Weight       *float64 // kg
	FTP          *float64 // watts
	Gender       *string
	FavoriteBike *string // free-text, matched against Bike.Title/Owner
}

// FullName returns the combined display name of the client
func (c *Client) FullName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.LastName
	}
}
