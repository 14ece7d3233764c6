package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestSponsorReminderRecipient(t *testing.T) {
	tests := []struct {
		name      string
		sponsor   *Sponsor
		wantEmail string
		wantName  string
	}{
		{
			name:      "no sponsor",
			sponsor:   nil,
			wantEmail: "",
		},
		{
			name:      "sponsor contact only",
			sponsor:   &Sponsor{ContactName: "Front Desk", ContactEmail: "office@acme.org"},
			wantEmail: "office@acme.org",
			wantName:  "Front Desk",
		},
		{
			name: "primary contact wins",
			sponsor: &Sponsor{
				ContactName:    "Front Desk",
				ContactEmail:   "office@acme.org",
				PrimaryContact: &Contact{ContactName: "Dana", Email: "dana@acme.org", IsPrimary: true},
			},
			wantEmail: "dana@acme.org",
			wantName:  "Dana",
		},
		{
			name: "primary contact without email falls back",
			sponsor: &Sponsor{
				ContactName:    "Front Desk",
				ContactEmail:   "office@acme.org",
				PrimaryContact: &Contact{ContactName: "Dana", IsPrimary: true},
			},
			wantEmail: "office@acme.org",
			wantName:  "Front Desk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, name := tt.sponsor.ReminderRecipient()
			if email != tt.wantEmail || name != tt.wantName {
				t.Errorf("ReminderRecipient() = (%q, %q), want (%q, %q)", email, name, tt.wantEmail, tt.wantName)
			}
			if got := tt.sponsor.HasContactEmail(); got != (tt.wantEmail != "") {
				t.Errorf("HasContactEmail() = %v", got)
			}
		})
	}
}

func TestNewContactNormalizesEmail(t *testing.T) {
	c := NewContact(uuid.New(), " Dana Reyes ", "Lead", " Dana@Acme.ORG ", "", time.Now())
	if c.ContactName != "Dana Reyes" || c.Email != "dana@acme.org" {
		t.Errorf("contact = %+v", c)
	}
	if c.IsPrimary {
		t.Error("contacts start secondary")
	}
	var missing *Contact
	if missing.HasEmail() {
		t.Error("nil contact has no email")
	}
}

func TestNewTagDefaults(t *testing.T) {
	tag := NewTag(" Local Business ", "Industry", "", "", time.Now())
	if tag.Name != "local business" || tag.Color != DefaultTagColor {
		t.Errorf("tag = %+v", tag)
	}
	if colored := NewTag("food", "", "#10b981", "", time.Now()); colored.Color != "#10B981" {
		t.Errorf("color = %q, want upper-case", colored.Color)
	}
}

func TestExtractMergeFields(t *testing.T) {
	got := ExtractMergeFields(
		"{{Organization_Name}} renews on {{ expiration_date }}",
		"Dear {{contact_name}}, {{organization_name}} {{1bad}} {{ spaced out }} {single}",
	)
	want := []string{"contact_name", "expiration_date", "organization_name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractMergeFields mismatch (-want +got):\n%s", diff)
	}
	if got := ExtractMergeFields("no placeholders"); got == nil || len(got) != 0 {
		t.Errorf("ExtractMergeFields = %#v, want empty slice", got)
	}
}

func TestEventIsUpcoming(t *testing.T) {
	today := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		date time.Time
		want bool
	}{
		{today, true},
		{today.AddDate(0, 0, 1), true},
		{today.AddDate(0, 0, -1), false},
	}
	for _, tt := range tests {
		e := NewEvent("Gala", EventTypeOther, tt.date, today)
		if got := e.IsUpcoming(today); got != tt.want {
			t.Errorf("IsUpcoming(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestCategoriesAndTypesAreExact(t *testing.T) {
	if !CategoryLapsedFollowUp.IsValid() || EmailTemplateCategory("lapsed follow-up").IsValid() {
		t.Error("template categories must match exactly")
	}
	if !EventTypeSpeakerSeries.IsValid() || EventType("Party").IsValid() {
		t.Error("event types must match exactly")
	}
}
