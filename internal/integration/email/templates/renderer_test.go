package templates

import (
	"strings"
	"testing"
)

func TestRenderRenewalReminder(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	html, text, err := r.Render("renewal_reminder", SponsorEmailData{
		Organization:   "Lakeside Youth Rugby",
		SponsorName:    "Acme Hardware",
		ContactName:    "Dana",
		TierName:       "Gold",
		FiscalYear:     "2025/2026",
		ExpirationDate: "2026-04-30",
		DaysRemaining:  12,
		TotalValue:     "2500.00",
		RenewalURL:     "https://example.org/sponsorships/1",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{"Hi Dana", "2026-04-30", "12 days from now", "Gold", "https://example.org/sponsorships/1"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q", want)
		}
	}
}

func TestRenderLapsedFollowUpFallsBackToSponsorName(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	_, text, err := r.Render("lapsed_follow_up", SponsorEmailData{
		Organization:   "Lakeside Youth Rugby",
		SponsorName:    "Acme Hardware",
		TierName:       "Unknown",
		ExpirationDate: "2025-09-30",
		DaysRemaining:  -16,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(text, "Hi Acme Hardware") {
		t.Errorf("expected greeting to fall back to sponsor name, got:\n%s", text)
	}
	if !strings.Contains(text, "16 days ago") {
		t.Errorf("expected days since expiration, got:\n%s", text)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, _, err := r.Render("password_reset", SponsorEmailData{}); err == nil {
		t.Error("expected error for unknown template")
	}
}
