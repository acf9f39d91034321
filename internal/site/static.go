package site

import (
	"io"
	"net/http"
	"path"
)

// StaticHandler serves /static/style.css and /static/script.js.
func StaticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body, ctype string
		switch path.Base(r.URL.Path) {
		case "style.css":
			body, ctype = cssContent, "text/css; charset=utf-8"
		case "script.js":
			body, ctype = jsContent, "text/javascript; charset=utf-8"
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		io.WriteString(w, body)
	})
}

// cssContent is the one stylesheet shipped with the site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --primary: #2563eb;
  --primary-dark: #1d4ed8;
  --primary-light: #dbeafe;
  --secondary: #7c3aed;
  --secondary-light: #ede9fe;
  --accent: #f97316;
  --accent-dark: #ea580c;
  --success: #16a34a;
  --success-light: #dcfce7;
  --warning: #d97706;
  --warning-light: #fef3c7;
  --danger: #dc2626;
  --danger-light: #fee2e2;
  --info: #0891b2;
  --info-light: #cffafe;
  --bg: #ffffff;
  --bg-muted: #f8fafc;
  --bg-dark: #0f172a;
  --text: #0f172a;
  --text-muted: #475569;
  --border: #e2e8f0;
  --radius: 12px;
  --shadow: 0 1px 3px rgba(15,23,42,0.08);
  --shadow-lg: 0 10px 30px rgba(15,23,42,0.12);
  --header-height: 72px;
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

img { max-width: 100%; display: block; }
a { color: var(--primary); text-decoration: none; }
a:hover { text-decoration: underline; }
ul { list-style: none; }
[hidden] { display: none !important; }

.sr-only {
  position: absolute;
  width: 1px;
  height: 1px;
  overflow: hidden;
  clip: rect(0, 0, 0, 0);
  white-space: nowrap;
}

.skip-link {
  position: absolute;
  left: -999px;
  top: 8px;
  background: var(--bg);
  padding: 8px 16px;
  z-index: 100;
}
.skip-link:focus { left: 8px; }

/* ============ Typography ============ */
.heading-1 { font-size: clamp(2.25rem, 5vw, 3.5rem); line-height: 1.1; font-weight: 800; margin-bottom: 1rem; }
.heading-2 { font-size: clamp(1.75rem, 3.5vw, 2.5rem); line-height: 1.2; font-weight: 700; margin-bottom: 1rem; }
.heading-3 { font-size: 1.5rem; font-weight: 700; margin-bottom: 1rem; }
.body-large { font-size: 1.125rem; color: var(--text-muted); margin-bottom: 2rem; }
.muted { color: var(--text-muted); }
.font-semibold { font-weight: 600; }
.text-center { text-align: center; }
.text-gradient {
  background: linear-gradient(90deg, var(--primary), var(--secondary));
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
.text-gradient-secondary {
  background: linear-gradient(90deg, var(--secondary), var(--accent));
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}

/* ============ Layout ============ */
.container { margin: 0 auto; padding: 0 1.5rem; width: 100%; }
.container-sm { max-width: 640px; }
.container-md { max-width: 768px; }
.container-lg { max-width: 1024px; }
.container-xl { max-width: 1280px; }
.container-full { max-width: none; }

.section { position: relative; }
.section-sm { padding: 2rem 0; }
.section-md { padding: 4rem 0; }
.section-lg { padding: 6rem 0; }
.bg-muted { background: var(--bg-muted); }
.bg-gradient { background: linear-gradient(135deg, var(--primary-light), var(--secondary-light)); }
.bg-dark { background: var(--bg-dark); color: #fff; }
.bg-dark .body-large, .bg-dark .muted { color: rgba(255,255,255,0.8); }

.section-heading { text-align: center; max-width: 720px; margin: 0 auto 3rem; }
.card-grid { display: grid; gap: 1.5rem; }
.cols-2 { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
.cols-3 { grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); }
.cols-4 { grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); }
.button-row { display: flex; flex-wrap: wrap; gap: 1rem; margin: 1.5rem 0; }
.button-row.center, .badge-row.center { justify-content: center; }
.badge-row { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1rem 0; }

/* ============ Header & Navigation ============ */
.site-header {
  position: sticky;
  top: 0;
  z-index: 50;
  background: rgba(255,255,255,0.92);
  backdrop-filter: blur(12px);
  border-bottom: 1px solid var(--border);
}
.header-inner { display: flex; align-items: center; gap: 2rem; height: var(--header-height); }
.brand { display: flex; align-items: center; gap: 0.75rem; font-weight: 700; color: var(--text); }
.brand:hover { text-decoration: none; }
.brand-mark {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 40px;
  height: 40px;
  border-radius: 10px;
  background: linear-gradient(135deg, var(--primary), var(--secondary));
  color: #fff;
  font-size: 0.8rem;
}
.main-nav { flex: 1; }
.nav-links { display: flex; gap: 0.25rem; }
.nav-item { position: relative; }
.nav-item > a { display: block; padding: 0.5rem 0.75rem; border-radius: 8px; color: var(--text-muted); font-weight: 500; }
.nav-item > a.active, .nav-item > a:hover { color: var(--primary); background: var(--primary-light); text-decoration: none; }
.dropdown {
  display: none;
  position: absolute;
  top: 100%;
  left: 0;
  min-width: 240px;
  padding: 0.5rem;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: var(--shadow-lg);
}
.has-dropdown:hover .dropdown, .has-dropdown:focus-within .dropdown { display: block; }
.dropdown a { display: flex; justify-content: space-between; align-items: center; padding: 0.5rem 0.75rem; border-radius: 8px; color: var(--text); }
.dropdown a:hover { background: var(--bg-muted); text-decoration: none; }
.dropdown-label { display: flex; flex-direction: column; }
.dropdown-note { font-size: 0.75rem; color: var(--text-muted); }
.status-dot { width: 8px; height: 8px; border-radius: 50%; background: var(--success); }
.header-actions { display: flex; gap: 0.5rem; }
.menu-toggle { display: none; background: none; border: 0; color: var(--text); cursor: pointer; }
.mobile-menu { padding: 1rem 1.5rem; border-top: 1px solid var(--border); }
.mobile-links li a { display: block; padding: 0.5rem 0; color: var(--text); }
.mobile-group-label { font-weight: 600; }
.mobile-group ul { padding-left: 1rem; }
.mobile-actions { display: flex; flex-direction: column; gap: 0.5rem; margin-top: 1rem; }

@media (max-width: 960px) {
  .main-nav, .header-actions { display: none; }
  .menu-toggle { display: block; margin-left: auto; }
}

/* ============ Buttons ============ */
.btn {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  gap: 0.5rem;
  border: 2px solid transparent;
  border-radius: 10px;
  font-weight: 600;
  cursor: pointer;
  transition: background 0.15s, color 0.15s, border-color 0.15s;
}
.btn:hover { text-decoration: none; }
.btn:disabled { opacity: 0.5; cursor: not-allowed; }
.btn-sm { padding: 0.375rem 0.75rem; font-size: 0.875rem; }
.btn-md { padding: 0.5rem 1rem; font-size: 1rem; }
.btn-lg { padding: 0.75rem 1.5rem; font-size: 1.0625rem; }
.btn-xl { padding: 1rem 2rem; font-size: 1.125rem; }
.btn-primary { background: var(--primary); color: #fff; }
.btn-primary:hover { background: var(--primary-dark); }
.btn-secondary { background: var(--secondary); color: #fff; }
.btn-accent { background: var(--accent); color: #fff; }
.btn-accent:hover { background: var(--accent-dark); }
.btn-outline { background: transparent; border-color: currentColor; color: var(--primary); }
.bg-dark .btn-outline { color: #fff; }
.btn-ghost { background: transparent; color: var(--text); }
.btn-ghost:hover { background: var(--bg-muted); }
.w-full { width: 100%; }

/* ============ Badges ============ */
.badge {
  display: inline-flex;
  align-items: center;
  gap: 0.375rem;
  border-radius: 999px;
  font-weight: 600;
}
.badge-sm { padding: 0.125rem 0.625rem; font-size: 0.75rem; }
.badge-md { padding: 0.25rem 0.75rem; font-size: 0.875rem; }
.badge-lg { padding: 0.375rem 1rem; font-size: 1rem; }
.badge-primary { background: var(--primary-light); color: var(--primary-dark); }
.badge-secondary { background: var(--secondary-light); color: var(--secondary); }
.badge-success { background: var(--success-light); color: var(--success); }
.badge-warning { background: var(--warning-light); color: var(--warning); }
.badge-danger { background: var(--danger-light); color: var(--danger); }
.badge-info { background: var(--info-light); color: var(--info); }
.badge-dot { width: 6px; height: 6px; border-radius: 50%; background: currentColor; }

/* ============ Cards ============ */
.card {
  display: flex;
  flex-direction: column;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  overflow: hidden;
  box-shadow: var(--shadow);
  color: var(--text);
}
.card-hover { transition: transform 0.2s, box-shadow 0.2s; }
.card-hover:hover { transform: translateY(-4px); box-shadow: var(--shadow-lg); }
.glass { background: rgba(255,255,255,0.75); backdrop-filter: blur(12px); }
.card-image { position: relative; height: 200px; }
.card-image img { width: 100%; height: 100%; object-fit: cover; }
.card-image-overlay { position: absolute; inset: 0; background: linear-gradient(to top, rgba(0,0,0,0.5), transparent); }
.card-header { padding: 1.25rem 1.25rem 0.5rem; }
.card-title { font-size: 1.25rem; font-weight: 700; }
.card-description { color: var(--text-muted); }
.card-content { padding: 0.5rem 1.25rem 1.25rem; flex: 1; }
.card-footer { padding: 0 1.25rem 1.25rem; }
.check-list li::before { content: "\2713"; color: var(--success); margin-right: 0.5rem; }
.state-facts li { color: var(--text-muted); }
.avatars { display: flex; margin: 0.5rem 0 1rem; }
.avatar { width: 32px; height: 32px; border-radius: 50%; border: 2px solid #fff; object-fit: cover; margin-left: -8px; }
.avatar:first-child { margin-left: 0; }
.provider-photo { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; margin-bottom: 0.75rem; }
.provider-credentials { color: var(--primary); font-weight: 600; }
.provider-bio { color: var(--text-muted); margin-bottom: 0.75rem; }

/* ============ Alerts ============ */
.alerts { padding-top: 1rem; }
.alert {
  display: flex;
  gap: 1rem;
  align-items: flex-start;
  padding: 1rem 1.25rem;
  border-radius: var(--radius);
  border: 1px solid transparent;
  margin-bottom: 1rem;
  transition: opacity 0.3s, transform 0.3s;
}
.alert-hidden { opacity: 0; transform: translateY(-8px); }
.alert-body { flex: 1; }
.alert-title { font-size: 1rem; font-weight: 700; }
.alert-info { background: var(--info-light); color: var(--info); }
.alert-success { background: var(--success-light); color: var(--success); }
.alert-warning { background: var(--warning-light); color: var(--warning); }
.alert-error { background: var(--danger-light); color: var(--danger); }
.alert-emergency { background: var(--danger); color: #fff; }
.alert-dismiss { background: none; border: 0; color: inherit; font-size: 1.25rem; cursor: pointer; }

/* ============ Page Sections ============ */
.hero-grid { display: grid; grid-template-columns: 1.1fr 1fr; gap: 3rem; align-items: center; }
.hero-visual { position: relative; }
.hero-visual > img { border-radius: 24px; box-shadow: var(--shadow-lg); }
.floating-card { position: absolute; bottom: -1.5rem; left: -1.5rem; padding: 1rem 1.25rem; border-radius: var(--radius); box-shadow: var(--shadow-lg); }
.trust-markers { display: flex; flex-wrap: wrap; gap: 1.5rem; }
.trust-markers li::before { content: "\2713"; color: var(--success); margin-right: 0.375rem; }
.hero-image { overflow: hidden; }
.hero-backdrop { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; opacity: 0.2; }
.hero-image > .container { position: relative; }
.expanding { margin-top: 3rem; text-align: center; }
.stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1.5rem; margin-top: 3rem; text-align: center; }
.stat-value { font-size: 2.5rem; font-weight: 800; color: var(--primary); }
.location-filter { max-width: 640px; margin: 0 auto; display: flex; flex-direction: column; gap: 1rem; }
.filter-buttons { display: flex; gap: 0.5rem; justify-content: center; }
.input { width: 100%; padding: 0.75rem 1rem; border: 1px solid var(--border); border-radius: 10px; font-size: 1rem; }
.input:focus { outline: 2px solid var(--primary); border-color: transparent; }
.result-count { margin-bottom: 1rem; }
.empty-state { text-align: center; padding: 3rem 0; }
.map-placeholder { margin-top: 2rem; padding: 3rem; border: 2px dashed var(--border); border-radius: var(--radius); }
.feature-list { display: grid; gap: 1.5rem; margin-top: 2rem; }
.feature-list li { padding-left: 2rem; position: relative; }
.feature-list li::before { content: "\2713"; position: absolute; left: 0; color: var(--success); font-weight: 700; }
.profile-photo { width: 128px; height: 128px; border-radius: 50%; object-fit: cover; margin: 1.5rem auto; border: 4px solid rgba(255,255,255,0.2); }
.profile-credentials { font-size: 1.25rem; color: var(--primary-light); margin-bottom: 1.5rem; }
.quick-info, .contact-methods { color: var(--text); text-align: left; padding: 1.5rem; border-radius: var(--radius); margin: 2rem 0; }
.contact-methods { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
.contact-methods h2 { grid-column: 1 / -1; font-size: 1.25rem; }
.contact-method { display: block; padding: 1rem; border-radius: 10px; background: var(--bg); color: var(--text); }
.emergency-box { background: var(--danger); color: #fff; padding: 1rem; border-radius: var(--radius); }
.emergency-box a { color: #fff; font-weight: 700; text-decoration: underline; }
.waitlist { margin: 2rem auto; max-width: 480px; }
.waitlist-form { display: flex; flex-direction: column; gap: 0.75rem; }
.waitlist-status { padding: 0.75rem; border-radius: 10px; background: var(--success-light); color: var(--success); margin-bottom: 1rem; }
.article-list li { padding: 0.5rem 0; border-bottom: 1px solid var(--border); }
.prose h2, .prose h3 { margin: 2rem 0 1rem; }
.prose p, .prose ul, .prose ol, .prose blockquote { margin-bottom: 1rem; }
.prose ul { list-style: disc; padding-left: 1.5rem; }
.prose ol { list-style: decimal; padding-left: 1.5rem; }
.prose blockquote { border-left: 4px solid var(--primary-light); padding-left: 1rem; color: var(--text-muted); }
.prose pre { padding: 1rem; border-radius: 10px; overflow-x: auto; }

@media (max-width: 768px) {
  .hero-grid, .stats, .contact-methods { grid-template-columns: 1fr; }
  .floating-card { position: static; margin-top: 1rem; }
  .section-lg { padding: 4rem 0; }
}

/* ============ Footer ============ */
.site-footer { background: var(--bg-dark); color: rgba(255,255,255,0.8); padding: 4rem 0 2rem; }
.site-footer a { color: rgba(255,255,255,0.8); }
.site-footer .brand { color: #fff; }
.footer-grid { display: grid; grid-template-columns: 2fr 1fr 1fr 1.5fr; gap: 2rem; }
.footer-heading { color: #fff; font-size: 1rem; margin-bottom: 1rem; }
.footer-grid li { margin-bottom: 0.5rem; }
.footer-note { font-size: 0.875rem; font-style: italic; }
.social-links { display: flex; gap: 1rem; margin-top: 1rem; }
.footer-emergency { margin-top: 1rem; padding: 0.75rem; border-radius: 10px; background: rgba(220,38,38,0.2); }
.footer-bottom { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 1rem; margin-top: 3rem; padding-top: 2rem; border-top: 1px solid rgba(255,255,255,0.1); font-size: 0.875rem; }
.legal-links { display: flex; gap: 1.5rem; }

@media (max-width: 768px) {
  .footer-grid { grid-template-columns: 1fr; }
}
`

// jsContent drives the mobile menu, alert dismissal, waitlist forms and the
// live locations filter. body[data-mode] says whether a server is behind
// the page ("server") or it was exported ("static").
const jsContent = `(function() {
  'use strict';

  var mode = document.body.getAttribute('data-mode') || 'static';

  // ---- Mobile menu ----
  var toggle = document.getElementById('menu-toggle');
  var menu = document.getElementById('mobile-menu');
  if (toggle && menu) {
    toggle.addEventListener('click', function() {
      var opening = menu.hasAttribute('hidden');
      if (opening) {
        menu.removeAttribute('hidden');
      } else {
        menu.setAttribute('hidden', '');
      }
      toggle.setAttribute('aria-expanded', String(opening));
    });
  }

  // ---- Alerts ----
  function storageKey(key) { return 'nbh-alert-' + key; }

  if (mode === 'static') {
    document.querySelectorAll('.alert[data-alert-key]').forEach(function(el) {
      try {
        if (localStorage.getItem(storageKey(el.getAttribute('data-alert-key')))) {
          el.remove();
        }
      } catch (e) {}
    });
  }

  document.querySelectorAll('.alert .alert-dismiss').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var el = btn.closest('.alert');
      if (!el || el.classList.contains('alert-hidden')) return;
      var key = el.getAttribute('data-alert-key');
      var delay = parseInt(el.getAttribute('data-dismiss-delay'), 10) || 300;

      el.classList.add('alert-hidden');
      if (key) {
        if (mode === 'server') {
          fetch('/api/alerts/' + encodeURIComponent(key) + '/dismiss', { method: 'POST' }).catch(function() {});
        } else {
          try { localStorage.setItem(storageKey(key), '1'); } catch (e) {}
        }
      }
      setTimeout(function() { el.remove(); }, delay);
    });
  });

  // ---- Waitlist ----
  var messages = {
    joined: "You're on the list. We'll be in touch.",
    already_joined: "You're already on the list. We'll be in touch."
  };

  function showStatus(el, text, isError) {
    if (!el) return;
    el.textContent = text;
    el.classList.toggle('is-error', !!isError);
    el.removeAttribute('hidden');
  }

  var waitlistParam = new URLSearchParams(window.location.search).get('waitlist');
  if (waitlistParam && messages[waitlistParam]) {
    document.querySelectorAll('[data-waitlist-status]').forEach(function(el) {
      showStatus(el, messages[waitlistParam], false);
    });
  }

  document.querySelectorAll('form[data-waitlist]').forEach(function(form) {
    form.addEventListener('submit', function(ev) {
      ev.preventDefault();
      var data = new FormData(form);
      var status = form.parentNode.querySelector('[data-waitlist-status]');
      fetch(form.getAttribute('action'), {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          email: data.get('email'),
          name: data.get('name'),
          kind: data.get('kind'),
          target: data.get('target')
        })
      }).then(function(res) {
        return res.json().then(function(body) { return { ok: res.ok, body: body }; });
      }).then(function(r) {
        if (r.ok) {
          showStatus(status, messages[r.body.status] || messages.joined, false);
          form.reset();
        } else {
          showStatus(status, r.body.error || 'Something went wrong. Please try again.', true);
        }
      }).catch(function() {
        showStatus(status, 'We could not save your request. Please call us instead.', true);
      });
    });
  });

  // ---- Locations filter ----
  var filter = document.getElementById('location-filter');
  var grid = document.getElementById('location-grid');
  if (!filter || !grid) return;

  var input = filter.querySelector('input[name="q"]');
  var count = document.getElementById('location-count');
  var buttons = filter.querySelectorAll('button[name="status"]');
  var status = filter.getAttribute('data-status') || 'all';

  function setStatus(value) {
    status = value;
    buttons.forEach(function(b) {
      var on = b.value === value;
      b.classList.toggle('btn-primary', on);
      b.classList.toggle('btn-outline', !on);
      b.setAttribute('aria-pressed', String(on));
    });
  }

  function matches(entry, q) {
    var byText = entry.name.toLowerCase().indexOf(q) !== -1 ||
      entry.short_name.toLowerCase().indexOf(q) !== -1;
    var byStatus = status === 'all' || entry.status === status;
    return byText && byStatus;
  }

  var send;
  if (mode === 'server' && 'WebSocket' in window) {
    var proto = window.location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + window.location.host + '/ws/locations');
    var pending = null;
    ws.onopen = function() {
      if (pending) { ws.send(pending); pending = null; }
    };
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      grid.innerHTML = msg.html;
      if (count) count.textContent = msg.count;
    };
    send = function() {
      var payload = JSON.stringify({ query: input.value, status: status });
      if (ws.readyState === WebSocket.OPEN) {
        ws.send(payload);
      } else {
        pending = payload;
      }
    };
  } else {
    var index = null;
    fetch('/locations.json').then(function(r) { return r.json(); }).then(function(d) { index = d; });
    send = function() {
      if (!index) return;
      var q = input.value.toLowerCase();
      var visible = {};
      var n = 0;
      index.forEach(function(entry) {
        if (matches(entry, q)) { visible[entry.id] = true; n++; }
      });
      grid.querySelectorAll('[data-state-id]').forEach(function(el) {
        if (visible[el.getAttribute('data-state-id')]) {
          el.removeAttribute('hidden');
        } else {
          el.setAttribute('hidden', '');
        }
      });
      var empty = grid.querySelector('[data-empty]');
      if (empty) {
        if (n === 0) { empty.removeAttribute('hidden'); } else { empty.setAttribute('hidden', ''); }
      }
      if (count) count.textContent = n;
    };
  }

  filter.addEventListener('submit', function(ev) { ev.preventDefault(); });
  input.addEventListener('input', send);
  buttons.forEach(function(b) {
    b.addEventListener('click', function(ev) {
      ev.preventDefault();
      setStatus(b.value);
      send();
    });
  });
  grid.addEventListener('click', function(ev) {
    var clear = ev.target.closest('[data-clear] a');
    if (!clear) return;
    ev.preventDefault();
    input.value = '';
    setStatus('all');
    send();
  });
})();
`
