//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
	"github.com/sponsor-tracker/backend/test/integration/mock"
)

func registerSetupSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, t.todayIs)
	ctx.Step(`^time advances by "([^"]*)"$`, t.timeAdvancesBy)
	ctx.Given(`^a sponsor "([^"]*)" exists with contact email "([^"]*)"$`, t.aSponsorExistsWithContactEmail)
	ctx.Given(`^a sponsor "([^"]*)" exists without a contact email$`, t.aSponsorExistsWithoutContactEmail)
	ctx.Given(`^the sponsor "([^"]*)" is archived$`, t.theSponsorIsArchived)
	ctx.Given(`^"([^"]*)" has a primary contact "([^"]*)" with email "([^"]*)"$`, t.hasAPrimaryContactWithEmail)
	ctx.Given(`^a tier "([^"]*)" exists with level (\d+) and suggested amount "([^"]*)"$`, t.aTierExists)
	ctx.Given(`^"([^"]*)" has a "([^"]*)" sponsorship for "([^"]*)" worth "([^"]*)" expiring on "([^"]*)"$`, t.aSponsorshipExpiringOn)
	ctx.Given(`^"([^"]*)" has a "([^"]*)" sponsorship for "([^"]*)" worth "([^"]*)"$`, t.aSponsorship)
	ctx.Given(`^a donation of "([^"]*)" was made on "([^"]*)"$`, t.aDonationWasMadeOn)
	ctx.Given(`^the fiscal year "([^"]*)" has a goal of "([^"]*)"$`, t.theFiscalYearHasAGoalOf)
	ctx.Given(`^the email provider rejects emails with status (\d+)$`, t.theEmailProviderRejectsEmails)
}

func registerRequestSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the header is empty$`, t.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	ctx.When(`^the email worker runs$`, t.theEmailWorkerRuns)
}

func registerResponseSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
}

func registerStorageSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, t.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the email provider should have received (\d+) emails?$`, t.theEmailProviderShouldHaveReceived)
	ctx.Then(`^email (\d+) sent to the provider should have "([^"]*)" containing "([^"]*)"$`, t.emailSentToTheProviderShouldHave)
	ctx.Then(`^email (\d+) sent to the provider should carry the header "([^"]*)" with "([^"]*)"$`, t.emailSentToTheProviderShouldCarryHeader)
	ctx.Then(`^the summary cache should hold (\d+) entr(?:y|ies)$`, t.theSummaryCacheShouldHold)
}

// Setup steps

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	day, err := valueobject.ParseDate(date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(9 * time.Hour))
	return nil
}

func (t *testContext) timeAdvancesBy(raw string) error {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	t.timeMock.Advance(d)
	return nil
}

func (t *testContext) aSponsorExistsWithContactEmail(name, email string) error {
	return t.createSponsor(name, email)
}

func (t *testContext) aSponsorExistsWithoutContactEmail(name string) error {
	return t.createSponsor(name, "")
}

func (t *testContext) createSponsor(name, email string) error {
	sponsor := entity.NewSponsor(name, "Jo "+name, email, nil, t.timeMock.Now().UTC())
	if err := t.db.Seed(model.SponsorFromEntity(sponsor)); err != nil {
		return err
	}
	t.sponsorIDs[name] = sponsor.ID
	return nil
}

func (t *testContext) theSponsorIsArchived(name string) error {
	id, ok := t.sponsorIDs[name]
	if !ok {
		return fmt.Errorf("unknown sponsor %q", name)
	}
	return t.db.DbConn.Model(&model.SponsorModel{}).Where("id = ?", id).Update("is_active", false).Error
}

func (t *testContext) hasAPrimaryContactWithEmail(sponsorName, contactName, email string) error {
	sponsorID, ok := t.sponsorIDs[sponsorName]
	if !ok {
		return fmt.Errorf("sponsor %q was not created", sponsorName)
	}
	contact := entity.NewContact(sponsorID, contactName, "", email, "", t.timeMock.Now().UTC())
	contact.IsPrimary = true
	return t.db.Seed(model.ContactFromEntity(contact))
}

func (t *testContext) aTierExists(name string, level int, amount string) error {
	suggested, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	tier := entity.NewSponsorshipTier(name, level, suggested, t.timeMock.Now().UTC())
	if err := t.db.Seed(model.SponsorshipTierFromEntity(tier)); err != nil {
		return err
	}
	t.tierIDs[name] = tier.ID
	return nil
}

func (t *testContext) aSponsorship(sponsorName, status, fiscalYear, amount string) error {
	return t.seedSponsorship(sponsorName, status, fiscalYear, amount, "")
}

func (t *testContext) aSponsorshipExpiringOn(sponsorName, status, fiscalYear, amount, expiration string) error {
	return t.seedSponsorship(sponsorName, status, fiscalYear, amount, expiration)
}

func (t *testContext) seedSponsorship(sponsorName, status, fiscalYear, amount, expiration string) error {
	sponsorID, ok := t.sponsorIDs[sponsorName]
	if !ok {
		return fmt.Errorf("sponsor %q was not created", sponsorName)
	}
	fy, err := valueobject.ParseFiscalYear(fiscalYear)
	if err != nil {
		return err
	}
	monetary, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := t.timeMock.Now().UTC()
	sponsorship := entity.NewSponsorship(sponsorID, fy, entity.SponsorshipTypeMonetary, monetary, decimal.Zero, now)
	sponsorship.Status = entity.SponsorshipStatus(status)

	if expiration != "" {
		expires, err := valueobject.ParseDate(expiration)
		if err != nil {
			return err
		}
		sponsorship.ExpirationDate = &expires
	}

	if err := t.db.Seed(model.SponsorshipFromEntity(sponsorship)); err != nil {
		return err
	}
	t.lastSponsorshipID = sponsorship.ID
	return nil
}

func (t *testContext) aDonationWasMadeOn(amount, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	day, err := valueobject.ParseDate(date)
	if err != nil {
		return err
	}
	donation := entity.NewDonation("Friend of the Foundation", value, day, t.timeMock.Now().UTC())
	return t.db.Seed(model.DonationFromEntity(donation))
}

func (t *testContext) theFiscalYearHasAGoalOf(fiscalYear, amount string) error {
	fy, err := valueobject.ParseFiscalYear(fiscalYear)
	if err != nil {
		return err
	}
	goal, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	setting := entity.NewFiscalYearSetting(fy, goal, t.timeMock.Now().UTC())
	return t.db.Seed(model.FiscalYearSettingFromEntity(setting))
}

func (t *testContext) theEmailProviderRejectsEmails(status int) error {
	t.resend.ClearResponses("POST", "/emails")
	t.resend.SetResponse(-1, "POST", "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "validation_error",
		"message":    "Invalid `to` field",
	})
	return nil
}

// Request steps

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) theEmailWorkerRuns() error {
	if t.injector == nil {
		return errors.New("the API server is not running")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	t.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

var namedPlaceholder = regexp.MustCompile(`\{\{(sponsor|tier):([^}]+)\}\}`)

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{sponsorship_id}}", t.lastSponsorshipID.String())

	return namedPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		parts := namedPlaceholder.FindStringSubmatch(match)
		ids := t.sponsorIDs
		if parts[1] == "tier" {
			ids = t.tierIDs
		}
		if id, ok := ids[parts[2]]; ok {
			return id.String()
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created sponsorship ids for later {{sponsorship_id}} placeholders
	if method == http.MethodPost && strings.HasPrefix(path, "/api/v1/sponsorships") {
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastSponsorshipID = id
			}
		}
	}

	return nil
}

// Response steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		if count == 0 && getFieldValue(body, field) == nil {
			return nil
		}
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d: %v", field, count, len(items), items)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

// Storage steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.theDbShouldContainObjectsInWithTheValues(quantity, table, &godog.DocString{Content: "{}"})
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	record, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	recordType := reflect.TypeOf(record).Elem()
	recordSlicePtr := reflect.New(reflect.SliceOf(recordType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(recordSlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := recordSlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	if got := t.resend.RequestCount("POST", "/emails"); got != count {
		return fmt.Errorf("expected %d emails at the provider, got %d", count, got)
	}
	return nil
}

func (t *testContext) emailSentToTheProviderShouldHave(index int, field, expected string) error {
	request := t.resend.GetRequestBody("POST", "/emails", index-1)
	if request == nil {
		return fmt.Errorf("email %d was not sent", index)
	}

	actual := fmt.Sprintf("%v", getFieldValue(request, field))
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("email %d field '%s' = %q, want it to contain %q", index, field, actual, expected)
	}
	return nil
}

func (t *testContext) emailSentToTheProviderShouldCarryHeader(index int, header, expected string) error {
	if t.resend.RequestCount("POST", "/emails") < index {
		return fmt.Errorf("email %d was not sent", index)
	}
	if got := t.resend.GetRequestHeader("POST", "/emails", index-1, header); got != expected {
		return fmt.Errorf("email %d header '%s' = %q, want %q", index, header, got, expected)
	}
	return nil
}

func (t *testContext) theSummaryCacheShouldHold(count int) error {
	got, err := mock.CountKeys(mock.NewRedis(), "sponsor-tracker:summary:*")
	if err != nil {
		return err
	}
	if got != count {
		return fmt.Errorf("expected %d cached summaries, got %d", count, got)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
