package client

import "time"

// Player is a squad member as returned by the API.
type Player struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	JerseyNumber int       `json:"jerseyNumber"`
	Photo        string    `json:"photo"`
	Age          int       `json:"age"`
	Height       string    `json:"height"`
	Weight       string    `json:"weight"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PlayerInput is the JSON payload for creating or updating a player.
// Nil fields are left unchanged on update.
type PlayerInput struct {
	Name         *string `json:"name,omitempty"`
	Position     *string `json:"position,omitempty"`
	JerseyNumber *int    `json:"jerseyNumber,omitempty"`
	Age          *int    `json:"age,omitempty"`
	Height       *string `json:"height,omitempty"`
	Weight       *string `json:"weight,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// Match is a fixture as returned by the API. Scores are nil until entered.
type Match struct {
	ID          string    `json:"_id"`
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	IsHome      bool      `json:"isHome"`
	Status      string    `json:"status"`
	HomeScore   *int      `json:"homeScore"`
	AwayScore   *int      `json:"awayScore"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MatchInput is the JSON payload for creating or updating a match.
// Date accepts RFC 3339 or a plain YYYY-MM-DD date.
type MatchInput struct {
	Opponent    *string `json:"opponent,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Venue       *string `json:"venue,omitempty"`
	IsHome      *bool   `json:"isHome,omitempty"`
	Status      *string `json:"status,omitempty"`
	HomeScore   *int    `json:"homeScore,omitempty"`
	AwayScore   *int    `json:"awayScore,omitempty"`
	Description *string `json:"description,omitempty"`
}

// MatchResult is the club-side view of a completed match's score.
type MatchResult struct {
	OurScore   int    `json:"ourScore"`
	TheirScore int    `json:"theirScore"`
	Outcome    string `json:"outcome"`
}

// ResultRow is a completed match with its derived result.
type ResultRow struct {
	Match
	Result MatchResult `json:"result"`
}

// SeasonStats aggregates completed matches.
type SeasonStats struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// Article is a news post as returned by the API.
type Article struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Published *bool     `json:"published,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleInput is the JSON payload for creating or updating a news post.
type ArticleInput struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Author    *string `json:"author,omitempty"`
	Category  *string `json:"category,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// GalleryItem is a media item as returned by the API.
type GalleryItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Sponsor is a sponsor as returned by the API.
type Sponsor struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo"`
	Website     string    `json:"website"`
	Tier        string    `json:"tier"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SponsorInput is the JSON payload for updating a sponsor.
type SponsorInput struct {
	Name        *string `json:"name,omitempty"`
	Website     *string `json:"website,omitempty"`
	Tier        *string `json:"tier,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactSubmission is the public contact form payload.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// User is an account as returned by the auth endpoints.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DashboardCounts summarizes the content collections for the admin overview.
type DashboardCounts struct {
	Players        int64 `json:"players"`
	Matches        int64 `json:"matches"`
	News           int64 `json:"news"`
	Gallery        int64 `json:"gallery"`
	Sponsors       int64 `json:"sponsors"`
	Contacts       int64 `json:"contacts"`
	UnreadContacts int64 `json:"unreadContacts"`
}

// Health is the health endpoint response.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
