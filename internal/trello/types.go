package trello

// Entities mirror the upstream Trello resource model. Every struct is a
// direct deserialization of the response body; date fields stay as the
// RFC3339 strings Trello sends (nullable ones as *string) so a JSON
// round trip reproduces them verbatim. Identifiers are opaque strings and
// are never validated locally.

// Filter selects entities by open/closed status on list-style reads.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterOpen   Filter = "open"
	FilterClosed Filter = "closed"
)

// Valid reports whether f is one of the closed set of filter values.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterOpen, FilterClosed:
		return true
	}
	return false
}

// CheckItem states.
const (
	CheckItemComplete   = "complete"
	CheckItemIncomplete = "incomplete"
)

// Custom field types.
const (
	CustomFieldText     = "text"
	CustomFieldNumber   = "number"
	CustomFieldDate     = "date"
	CustomFieldCheckbox = "checkbox"
	CustomFieldList     = "list"
)

// LabelColors is the closed set of colors Trello accepts for labels.
var LabelColors = []string{
	"green", "yellow", "orange", "red", "purple", "blue",
	"sky", "lime", "pink", "black", "null",
}

// Board is a Trello board.
type Board struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Desc             string      `json:"desc,omitempty"`
	Closed           bool        `json:"closed"`
	IDOrganization   string      `json:"idOrganization,omitempty"`
	Pinned           bool        `json:"pinned,omitempty"`
	Starred          bool        `json:"starred,omitempty"`
	URL              string      `json:"url,omitempty"`
	ShortURL         string      `json:"shortUrl,omitempty"`
	DateLastActivity *string     `json:"dateLastActivity,omitempty"`
	Prefs            *BoardPrefs `json:"prefs,omitempty"`
}

// BoardPrefs carries the subset of board preferences the gateway exposes.
type BoardPrefs struct {
	PermissionLevel string `json:"permissionLevel,omitempty"`
	Voting          string `json:"voting,omitempty"`
	Comments        string `json:"comments,omitempty"`
	Invitations     string `json:"invitations,omitempty"`
	SelfJoin        bool   `json:"selfJoin,omitempty"`
	CardCovers      bool   `json:"cardCovers,omitempty"`
	Background      string `json:"background,omitempty"`
}

// List is a vertical column on a board.
type List struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Closed     bool    `json:"closed"`
	IDBoard    string  `json:"idBoard,omitempty"`
	Pos        float64 `json:"pos,omitempty"`
	Subscribed bool    `json:"subscribed,omitempty"`
}

// Card is a single card on a list.
type Card struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Desc             string   `json:"desc,omitempty"`
	Closed           bool     `json:"closed"`
	IDBoard          string   `json:"idBoard,omitempty"`
	IDList           string   `json:"idList,omitempty"`
	IDMembers        []string `json:"idMembers,omitempty"`
	IDLabels         []string `json:"idLabels,omitempty"`
	IDChecklists     []string `json:"idChecklists,omitempty"`
	Labels           []Label  `json:"labels,omitempty"`
	Due              *string  `json:"due,omitempty"`
	DueComplete      bool     `json:"dueComplete,omitempty"`
	Start            *string  `json:"start,omitempty"`
	Pos              float64  `json:"pos,omitempty"`
	URL              string   `json:"url,omitempty"`
	ShortURL         string   `json:"shortUrl,omitempty"`
	DateLastActivity *string  `json:"dateLastActivity,omitempty"`
}

// Label is a colored tag attached to cards.
type Label struct {
	ID      string `json:"id"`
	IDBoard string `json:"idBoard,omitempty"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
}

// Member is a Trello user.
type Member struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName,omitempty"`
	Initials   string `json:"initials,omitempty"`
	URL        string `json:"url,omitempty"`
	MemberType string `json:"memberType,omitempty"`
	Confirmed  bool   `json:"confirmed,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// Organization is a Trello workspace.
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Desc        string `json:"desc,omitempty"`
	URL         string `json:"url,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Checklist is an ordered list of check items on a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDBoard    string      `json:"idBoard,omitempty"`
	IDCard     string      `json:"idCard,omitempty"`
	Pos        float64     `json:"pos,omitempty"`
	CheckItems []CheckItem `json:"checkItems,omitempty"`
}

// CheckItem is one entry in a checklist. State is "complete" or
// "incomplete".
type CheckItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	IDChecklist string  `json:"idChecklist,omitempty"`
	Pos         float64 `json:"pos,omitempty"`
	Due         *string `json:"due,omitempty"`
	IDMember    string  `json:"idMember,omitempty"`
}

// CustomField is a custom field definition on a board.
type CustomField struct {
	ID        string              `json:"id"`
	IDModel   string              `json:"idModel,omitempty"`
	ModelType string              `json:"modelType,omitempty"`
	Name      string              `json:"name"`
	Type      string              `json:"type"`
	Pos       float64             `json:"pos,omitempty"`
	Options   []CustomFieldOption `json:"options,omitempty"`
	Display   *CustomFieldDisplay `json:"display,omitempty"`
}

// CustomFieldDisplay controls where a field's value is shown.
type CustomFieldDisplay struct {
	CardFront bool `json:"cardFront"`
}

// CustomFieldOption is one selectable value of a list-type custom field.
type CustomFieldOption struct {
	ID            string            `json:"id,omitempty"`
	IDCustomField string            `json:"idCustomField,omitempty"`
	Value         map[string]string `json:"value"`
	Color         string            `json:"color,omitempty"`
	Pos           float64           `json:"pos,omitempty"`
}

// CustomFieldValue is the typed value payload for setting a field on a
// card. Exactly one member is set, keyed by the field's type.
type CustomFieldValue struct {
	Text    string `json:"text,omitempty"`
	Number  string `json:"number,omitempty"`
	Date    string `json:"date,omitempty"`
	Checked string `json:"checked,omitempty"`
}

// CustomFieldItem is a value bound to a card for one custom field.
type CustomFieldItem struct {
	ID            string            `json:"id"`
	IDCustomField string            `json:"idCustomField"`
	IDModel       string            `json:"idModel,omitempty"`
	ModelType     string            `json:"modelType,omitempty"`
	Value         *CustomFieldValue `json:"value,omitempty"`
	IDValue       string            `json:"idValue,omitempty"`
}

// Webhook is a registered callback on a Trello model.
type Webhook struct {
	ID                       string  `json:"id"`
	Description              string  `json:"description,omitempty"`
	IDModel                  string  `json:"idModel"`
	CallbackURL              string  `json:"callbackURL"`
	Active                   bool    `json:"active"`
	ConsecutiveFailures      int     `json:"consecutiveFailures,omitempty"`
	FirstConsecutiveFailDate *string `json:"firstConsecutiveFailDate,omitempty"`
}

// Action is one entry in a board's or card's activity history. Data is
// kept raw except for the comment text, which the gateway surfaces
// directly.
type Action struct {
	ID              string      `json:"id"`
	IDMemberCreator string      `json:"idMemberCreator,omitempty"`
	Type            string      `json:"type"`
	Date            string      `json:"date,omitempty"`
	Data            *ActionData `json:"data,omitempty"`
	MemberCreator   *Member     `json:"memberCreator,omitempty"`
}

// ActionData is the payload of an action. Text is populated for comment
// actions.
type ActionData struct {
	Text string `json:"text,omitempty"`
}

// Attachment is a file or link attached to a card.
type Attachment struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url"`
	Bytes     int64  `json:"bytes,omitempty"`
	Date      string `json:"date,omitempty"`
	EdgeColor string `json:"edgeColor,omitempty"`
	IDMember  string `json:"idMember,omitempty"`
	MimeType  string `json:"mimeType,omitempty"`
	IsUpload  bool   `json:"isUpload,omitempty"`
}

// SearchResult aggregates matches across model types for one query.
type SearchResult struct {
	Boards        []Board        `json:"boards,omitempty"`
	Cards         []Card         `json:"cards,omitempty"`
	Members       []Member       `json:"members,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
}
