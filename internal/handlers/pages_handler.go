package handlers

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/content"
)

type PagesHandler struct {
	registry *content.Registry
	home     *template.Template
}

func NewPagesHandler(registry *content.Registry) *PagesHandler {
	return &PagesHandler{
		registry: registry,
		home:     template.Must(template.New("home").Parse(homeTemplate)),
	}
}

// pageData is the template context for localized pages. Templates call
// .T directly so copy lives in the locale tables, not the markup.
type pageData struct {
	Locale   string
	Locales  []string
	registry *content.Registry
}

func (d pageData) T(key string) string {
	return d.registry.T(d.Locale, key)
}

// Home renders the marketing landing page. The optional :lang param picks
// the locale; anything not loaded redirects to the default page.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	locale := c.Params("lang", content.DefaultLocale)
	if !h.registry.Has(locale) {
		return c.Redirect("/", fiber.StatusFound)
	}

	data := pageData{
		Locale:   locale,
		Locales:  h.registry.Locales(),
		registry: h.registry,
	}

	var buf bytes.Buffer
	if err := h.home.Execute(&buf, data); err != nil {
		slog.Error("failed to render home page", "locale", locale, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}
	return c.Type("html").Send(buf.Bytes())
}

func (h *PagesHandler) AdminLogin(c *fiber.Ctx) error {
	return c.Type("html").SendString(adminLoginPage)
}

func (h *PagesHandler) AdminDashboard(c *fiber.Ctx) error {
	return c.Type("html").SendString(adminDashboardPage)
}

const homeTemplate = `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
<meta charset="utf-8">
<title>{{.T "site_title"}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="{{.T "meta_description"}}">
<style>
body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;margin:0;color:#1a1a1a}
.hero{max-width:960px;margin:0 auto;padding:96px 24px;text-align:center}
.hero h1{font-size:48px;margin:0 0 16px}
.hero p{font-size:20px;color:#555;margin:0 0 32px}
.cta{display:inline-block;background:#0a84ff;color:#fff;padding:14px 32px;border-radius:12px;text-decoration:none;font-weight:600}
.features{max-width:960px;margin:0 auto;padding:48px 24px;display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:32px}
.features h3{margin:0 0 8px}
.features p{color:#555;margin:0}
footer{max-width:960px;margin:0 auto;padding:48px 24px;color:#888;font-size:14px}
footer a{color:#888;margin-right:16px}
</style>
</head>
<body>
<section class="hero">
<h1>{{.T "hero_title"}}</h1>
<p>{{.T "hero_subtitle"}}</p>
<a class="cta" href="{{.T "app_store_url"}}">{{.T "cta_download"}}</a>
</section>
<section class="features">
<div><h3>{{.T "feature_timing_title"}}</h3><p>{{.T "feature_timing_body"}}</p></div>
<div><h3>{{.T "feature_history_title"}}</h3><p>{{.T "feature_history_body"}}</p></div>
<div><h3>{{.T "feature_share_title"}}</h3><p>{{.T "feature_share_body"}}</p></div>
</section>
<footer>
<a href="/privacy">{{.T "footer_privacy"}}</a>
<a href="/terms">{{.T "footer_terms"}}</a>
<a href="/feedback">{{.T "footer_feedback"}}</a>
{{range .Locales}}<a href="/{{.}}">{{.}}</a>{{end}}
</footer>
</body>
</html>`

const adminLoginPage = `<!DOCTYPE html>
<html><head><title>Admin Login - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:360px;margin:120px auto;padding:20px;color:#333}input,button{width:100%;padding:12px;margin:6px 0;box-sizing:border-box;border-radius:8px;border:1px solid #ccc}button{background:#0a84ff;color:#fff;border:none;font-weight:600;cursor:pointer}#err{color:#c00;min-height:20px}</style>
</head><body>
<h1>Admin</h1>
<p id="err"></p>
<input id="password" type="password" placeholder="Password" autofocus>
<button onclick="login()">Sign in</button>
<script>
async function login(){
  const res = await fetch('/admin/api/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({password: document.getElementById('password').value})
  });
  if (res.ok) {
    const params = new URLSearchParams(window.location.search);
    window.location = params.get('redirect') || '/admin';
  } else {
    document.getElementById('err').textContent = 'Wrong password';
  }
}
document.getElementById('password').addEventListener('keydown', e => { if (e.key === 'Enter') login(); });
</script>
</body></html>`

const adminDashboardPage = `<!DOCTYPE html>
<html><head><title>Admin - TrackSpeed</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:960px;margin:0 auto;padding:24px;color:#333}nav a{margin-right:16px}#out{white-space:pre-wrap;background:#f5f5f7;padding:16px;border-radius:8px;font-family:ui-monospace,monospace;font-size:13px}</style>
</head><body>
<h1>TrackSpeed Admin</h1>
<nav>
<a href="#" onclick="load('/admin/api/analytics')">Analytics</a>
<a href="#" onclick="load('/admin/api/promo-codes')">Promo codes</a>
<a href="#" onclick="load('/admin/api/redemptions')">Redemptions</a>
<a href="#" onclick="load('/admin/api/influencers')">Influencers</a>
<a href="#" onclick="logout()">Logout</a>
</nav>
<div id="out">Pick a section.</div>
<script>
async function load(path){
  const res = await fetch(path);
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
}
async function logout(){
  await fetch('/admin/api/logout', {method: 'POST'});
  window.location = '/admin/login';
}
load('/admin/api/analytics');
</script>
</body></html>`
