package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"shopadmin/internal/domain"
	"shopadmin/internal/repos"
)

// staffSession binds a session for the seeded STAFF user and fetches a
// CSRF token the way a browser would (load the login page first).
func staffSession(t *testing.T, app *fiber.App, userRepo *repos.UserRepo) (sid, csrfTok string) {
	t.Helper()
	sid = "sid-staff"
	if err := userRepo.BindSession(sid, "u-staff"); err != nil {
		t.Fatalf("bind session: %v", err)
	}
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	csrfTok = extractCookie(resp, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}
	return sid, csrfTok
}

func postCategories(t *testing.T, app *fiber.App, sid, csrfTok string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getCategories(t *testing.T, app *fiber.App, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/admin/categories", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func listCategories(t *testing.T, db *sqlx.DB) []domain.Category {
	t.Helper()
	cats, err := repos.NewCategoryRepo(db).ListWithCounts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return cats
}

func TestEmptyListingShowsEmptyState(t *testing.T) {
	app, _, userRepo := newTestApp(t)
	sid, _ := staffSession(t, app, userRepo)

	body := readBody(t, getCategories(t, app, sid))
	if !strings.Contains(body, "No categories found.") {
		t.Fatal("empty-state message missing")
	}
}

func TestCategoryLifecycle(t *testing.T) {
	app, db, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	// Create on an empty table
	resp := postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"create"},
		"category_name": {"Hair Care"},
		"img_name":      {"hair_care"},
	})
	body := readBody(t, resp)
	if !strings.Contains(body, "Category created.") {
		t.Fatalf("missing success message in: %.400s", body)
	}
	if !strings.Contains(body, "Hair Care") {
		t.Fatal("new category not in listing")
	}
	cats := listCategories(t, db)
	if len(cats) != 1 || cats[0].ID != 1 || cats[0].Name != "Hair Care" || cats[0].ImgName != "hair_care" || cats[0].ProductCount != 0 {
		t.Fatalf("unexpected rows: %+v", cats)
	}

	// Duplicate create is rejected, table unchanged
	body = readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"create"},
		"category_name": {"Hair Care"},
	}))
	if !strings.Contains(body, "Category name already exists.") {
		t.Fatal("missing duplicate error")
	}
	if len(listCategories(t, db)) != 1 {
		t.Fatal("duplicate create wrote a row")
	}

	// Update renames and re-points the image
	body = readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"update"},
		"category_id":   {"1"},
		"category_name": {"Skin Care"},
		"img_name":      {"skin"},
	}))
	if !strings.Contains(body, "Category updated.") {
		t.Fatal("missing update success")
	}
	cats = listCategories(t, db)
	if cats[0].Name != "Skin Care" || cats[0].ImgName != "skin" {
		t.Fatalf("update not applied: %+v", cats[0])
	}

	// A referenced category cannot be deleted
	if _, err := db.Exec(`INSERT INTO products(category_id,name,price) VALUES(1,'Day Cream',12.5)`); err != nil {
		t.Fatal(err)
	}
	body = readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":      {"delete"},
		"category_id": {"1"},
	}))
	if !strings.Contains(body, "Cannot delete: category is in use by products.") {
		t.Fatal("missing in-use error")
	}
	if len(listCategories(t, db)) != 1 {
		t.Fatal("guarded delete removed the row")
	}

	// Once unreferenced, delete succeeds
	if _, err := db.Exec(`DELETE FROM products WHERE category_id = 1`); err != nil {
		t.Fatal(err)
	}
	body = readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":      {"delete"},
		"category_id": {"1"},
	}))
	if !strings.Contains(body, "Category deleted.") {
		t.Fatal("missing delete success")
	}
	if len(listCategories(t, db)) != 0 {
		t.Fatal("row still present after delete")
	}
}

func TestCreateValidationErrors(t *testing.T) {
	app, db, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	body := readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"create"},
		"category_name": {""},
	}))
	if !strings.Contains(body, "Category name is required and must be at most 64 characters.") {
		t.Fatal("missing length-validation error")
	}
	if len(listCategories(t, db)) != 0 {
		t.Fatal("invalid create wrote a row")
	}

	body = readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"create"},
		"category_name": {strings.Repeat("x", 65)},
	}))
	if !strings.Contains(body, "Category name is required and must be at most 64 characters.") {
		t.Fatal("missing length-validation error for overlong name")
	}
	if len(listCategories(t, db)) != 0 {
		t.Fatal("overlong create wrote a row")
	}
}

func TestDeleteNonexistentReportsFailure(t *testing.T) {
	app, _, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	body := readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":      {"delete"},
		"category_id": {"999"},
	}))
	if !strings.Contains(body, "Failed to delete category.") {
		t.Fatal("missing failure message for nonexistent id")
	}
}

func TestInvalidIDReportsInvalidCategory(t *testing.T) {
	app, _, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	for _, id := range []string{"0", "-1", "abc", ""} {
		body := readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
			"action":      {"delete"},
			"category_id": {id},
		}))
		if !strings.Contains(body, "Invalid category.") {
			t.Fatalf("id %q: missing invalid-category error", id)
		}
	}
}

func TestListingOrderedByName(t *testing.T) {
	app, _, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	for _, name := range []string{"Skin Care", "Accessories", "Hair Care"} {
		postCategories(t, app, sid, csrfTok, url.Values{
			"action":        {"create"},
			"category_name": {name},
		})
	}

	body := readBody(t, getCategories(t, app, sid))
	iAcc := strings.Index(body, "Accessories")
	iHair := strings.Index(body, "Hair Care")
	iSkin := strings.Index(body, "Skin Care")
	if iAcc < 0 || iHair < 0 || iSkin < 0 {
		t.Fatal("categories missing from listing")
	}
	if !(iAcc < iHair && iHair < iSkin) {
		t.Fatalf("listing not ordered by name: %d %d %d", iAcc, iHair, iSkin)
	}
}

func TestDisplayedNamesAreEscaped(t *testing.T) {
	app, db, userRepo := newTestApp(t)
	sid, csrfTok := staffSession(t, app, userRepo)

	// Quotes survive sanitization; the template must escape them
	body := readBody(t, postCategories(t, app, sid, csrfTok, url.Values{
		"action":        {"create"},
		"category_name": {`Hair "Care" & Co`},
	}))
	if strings.Contains(body, `value="Hair "Care" & Co"`) {
		t.Fatal("name echoed unescaped into attribute")
	}
	cats := listCategories(t, db)
	if len(cats) != 1 || cats[0].Name != `Hair "Care" & Co` {
		t.Fatalf("stored name mangled: %+v", cats)
	}
}

func TestGetNeverMutates(t *testing.T) {
	app, db, userRepo := newTestApp(t)
	sid, _ := staffSession(t, app, userRepo)

	// action=create via query string on a GET must not write
	req := httptest.NewRequest("GET", "/admin/categories?action=create&category_name=Sneaky", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if len(listCategories(t, db)) != 0 {
		t.Fatal("GET request mutated the store")
	}
}
