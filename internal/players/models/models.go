package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player roles stored on the document and carried in token claims
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// Location is a single GeoJSON point, absent until the client first
// reports a position
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [lng, lat]
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// Checkpoint is a named player-placed point of interest
type Checkpoint struct {
	Name      string    `bson:"name" json:"name"`
	Lat       float64   `bson:"lat" json:"lat"`
	Lng       float64   `bson:"lng" json:"lng"`
	ReachedAt time.Time `bson:"reachedAt" json:"reachedAt"`
}

// Stats holds the derived gameplay counters. TotalCheckpoints tracks
// len(Checkpoints) and is recomputed by every checkpoint mutation;
// TimePlayed accumulates session deltas in seconds and never decreases.
type Stats struct {
	DistanceTravelled float64 `bson:"distanceTravelled" json:"distanceTravelled"` // meters
	TotalCheckpoints  int     `bson:"totalCheckpoints" json:"totalCheckpoints"`
	TimePlayed        int64   `bson:"timePlayed" json:"timePlayed"` // seconds
}

// PowerUp is a reserved field: persisted, swept when expired, otherwise
// untouched by any handler
type PowerUp struct {
	Type       string    `bson:"type" json:"type"`
	AcquiredAt time.Time `bson:"acquiredAt" json:"acquiredAt"`
	ExpiresAt  time.Time `bson:"expiresAt" json:"expiresAt"`
}

// InventoryItem is a stack of a single item type
type InventoryItem struct {
	Item     string `bson:"item" json:"item"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// Preferences holds client rendering toggles
type Preferences struct {
	DayNightCycle bool `bson:"dayNightCycle" json:"dayNightCycle"`
	SoundEnabled  bool `bson:"soundEnabled" json:"soundEnabled"`
}

// Player is the root aggregate: one document per account in the users
// collection. Field names match the documents written by earlier deployments.
type Player struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Role     string             `bson:"role" json:"role"`

	Location       *Location            `bson:"location,omitempty" json:"location,omitempty"`
	FogClearedArea [][]float64          `bson:"fogClearedArea" json:"fogClearedArea"`
	Checkpoints    []Checkpoint         `bson:"checkpoints" json:"checkpoints"`
	PathHistory    [][]float64          `bson:"pathHistory" json:"pathHistory"`
	PowerUps       []PowerUp            `bson:"powerUps" json:"powerUps"`
	Inventory      []InventoryItem      `bson:"inventory" json:"inventory"`
	Stats          Stats                `bson:"stats" json:"stats"`
	Preferences    Preferences          `bson:"preferences" json:"preferences"`
	Friends        []primitive.ObjectID `bson:"friends" json:"friends"`

	LastLogin  *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	LastLogout *time.Time `bson:"lastLogout,omitempty" json:"lastLogout,omitempty"`
	IsOnline   bool       `bson:"isOnline" json:"isOnline"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CollectionName returns the MongoDB collection for player documents
func (Player) CollectionName() string {
	return "users"
}

// PublicProjection lists the fields safe to return on auth responses
type PublicPlayer struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
	Role     string    `json:"role"`
	Location *Location `json:"location,omitempty"`
}

// Public converts a player document into its public-safe projection
func (p *Player) Public() PublicPlayer {
	return PublicPlayer{
		ID:       p.ID.Hex(),
		Username: p.Username,
		Email:    p.Email,
		Avatar:   p.Avatar,
		Role:     p.Role,
		Location: p.Location,
	}
}
