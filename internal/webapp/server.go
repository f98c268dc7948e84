// Package webapp serves the audit-checklist UI: a login page, the
// manager view over the master checklist and assignments, and the
// employee view that fills out assigned checklists and downloads
// completed audit exports.
package webapp

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ifclabs/ifcsuite/internal/envutil"
	"github.com/ifclabs/ifcsuite/internal/exports"
	"github.com/ifclabs/ifcsuite/internal/middleware"
	"github.com/ifclabs/ifcsuite/internal/security"
	"github.com/ifclabs/ifcsuite/internal/store"
)

const (
	sessionCookieName = "ifcsuite_session"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxUploadBytes    = 10 << 20
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets/app.css
var appCSS []byte

type Config struct {
	Addr         string
	DataDir      string
	SessionTTL   time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfigFromEnv() Config {
	ttl := 8 * time.Hour
	if parsed, err := time.ParseDuration(envutil.OrDefault("SESSION_TTL", "")); err == nil && parsed > 0 {
		ttl = parsed
	}
	return Config{
		Addr:         envutil.OrDefault("ADDR", ":8501"),
		DataDir:      envutil.OrDefault("DATA_DIR", "data"),
		SessionTTL:   ttl,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

type session struct {
	username  string
	role      store.Role
	expiresAt time.Time
}

type server struct {
	logger      *zap.Logger
	checklist   *store.ChecklistStore
	assignments *store.AssignmentStore
	users       *store.UserStore
	sink        *exports.Sink
	sessionTTL  time.Duration

	mu       sync.Mutex
	sessions map[string]session

	loginTmpl    *template.Template
	managerTmpl  *template.Template
	employeeTmpl *template.Template
}

// Run opens the file-backed stores under cfg.DataDir (seeding them on
// first run) and serves until the context is cancelled.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	s, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func newServer(cfg Config, logger *zap.Logger) (*server, error) {
	checklist, err := store.NewChecklistStore(filepath.Join(cfg.DataDir, "master_checklist.json"))
	if err != nil {
		return nil, err
	}
	assignments, err := store.NewAssignmentStore(filepath.Join(cfg.DataDir, "assignments.json"))
	if err != nil {
		return nil, err
	}
	users, err := store.NewUserStore(filepath.Join(cfg.DataDir, "users.json"))
	if err != nil {
		return nil, err
	}
	sink, err := exports.NewSink(filepath.Join(cfg.DataDir, "audit_logs"), filepath.Join(cfg.DataDir, "logo.png"))
	if err != nil {
		return nil, err
	}

	return &server{
		logger:       logger,
		checklist:    checklist,
		assignments:  assignments,
		users:        users,
		sink:         sink,
		sessionTTL:   cfg.SessionTTL,
		sessions:     map[string]session{},
		loginTmpl:    template.Must(template.ParseFS(templatesFS, "templates/login.html")),
		managerTmpl:  template.Must(template.ParseFS(templatesFS, "templates/manager.html")),
		employeeTmpl: template.Must(template.ParseFS(templatesFS, "templates/employee.html")),
	}, nil
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(s.loginRoute))
	mux.Handle("/login", http.HandlerFunc(s.loginRoute))
	mux.Handle("/logout", http.HandlerFunc(s.logout))
	mux.Handle("/manager", middleware.Chain(http.HandlerFunc(s.managerPage), s.requireRole(store.RoleManager)))
	mux.Handle("/manager/items", middleware.Chain(http.HandlerFunc(s.addChecklistItem), s.requireRole(store.RoleManager)))
	mux.Handle("/manager/items/", middleware.Chain(http.HandlerFunc(s.checklistItemRoutes), s.requireRole(store.RoleManager)))
	mux.Handle("/manager/assignments", middleware.Chain(http.HandlerFunc(s.saveAssignments), s.requireRole(store.RoleManager)))
	mux.Handle("/manager/checklist/import", middleware.Chain(http.HandlerFunc(s.importChecklist), s.requireRole(store.RoleManager)))
	mux.Handle("/manager/logo", middleware.Chain(http.HandlerFunc(s.uploadLogo), s.requireRole(store.RoleManager)))
	mux.Handle("/employee", middleware.Chain(http.HandlerFunc(s.employeePage), s.requireRole(store.RoleEmployee)))
	mux.Handle("/employee/audits", middleware.Chain(http.HandlerFunc(s.submitAudit), s.requireRole(store.RoleEmployee)))
	mux.Handle("/audits/download", middleware.Chain(http.HandlerFunc(s.downloadExport), s.requireLogin, middleware.NoStore))
	mux.Handle("/audits/archive.tar.xz", middleware.Chain(http.HandlerFunc(s.downloadArchive), s.requireLogin, middleware.NoStore))
	mux.Handle("/assets/app.css", http.HandlerFunc(s.appCSSFile))

	csp := strings.Join([]string{
		"default-src 'self'",
		"style-src 'self'",
		"img-src 'self' data:",
		"frame-ancestors 'none'",
	}, "; ")

	return middleware.Chain(
		mux,
		middleware.SecurityHeaders(middleware.SecurityHeadersConfig{ContentSecurityPolicy: csp}),
	)
}

func (s *server) appCSSFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(appCSS)
}

// --- sessions ---

func (s *server) createSession(username string, role store.Role) (string, error) {
	token, err := security.RandomToken(32)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{
		username:  username,
		role:      role,
		expiresAt: time.Now().Add(s.sessionTTL),
	}
	return token, nil
}

func (s *server) sessionFrom(r *http.Request) (session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return session{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[cookie.Value]
	if !ok {
		return session{}, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, cookie.Value)
		return session{}, false
	}
	return sess, true
}

func (s *server) dropSession(r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, cookie.Value)
}

func (s *server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.sessionTTL),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func roleHome(role store.Role) string {
	if role == store.RoleManager {
		return "/manager"
	}
	return "/employee"
}

func (s *server) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessionFrom(r); !ok {
			http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) requireRole(role store.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := s.sessionFrom(r)
			if !ok {
				http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
				return
			}
			if sess.role != role {
				http.Redirect(w, r, roleHome(sess.role), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// --- login / logout ---

type loginPageData struct {
	Error string
}

func (s *server) loginRoute(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/login" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.loginPage(w, r)
	case http.MethodPost:
		s.login(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *server) loginPage(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.sessionFrom(r); ok {
		http.Redirect(w, r, roleHome(sess.role), http.StatusFound)
		return
	}
	s.render(w, s.loginTmpl, loginPageData{Error: r.URL.Query().Get("error")})
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error=Invalid+form+submission", http.StatusFound)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Redirect(w, r, "/?error=Username+and+password+are+required", http.StatusFound)
		return
	}

	role, err := s.users.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, store.ErrAuthFailure) {
			http.Redirect(w, r, "/?error=Invalid+username+or+password", http.StatusFound)
			return
		}
		s.logger.Error("authenticate", zap.Error(err))
		http.Redirect(w, r, "/?error=Storage+unavailable", http.StatusFound)
		return
	}

	token, err := s.createSession(username, role)
	if err != nil {
		s.logger.Error("create session", zap.Error(err))
		http.Error(w, "unable to start session", http.StatusInternalServerError)
		return
	}
	s.setSessionCookie(w, token)
	http.Redirect(w, r, roleHome(role), http.StatusFound)
}

func (s *server) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.dropSession(r)
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// --- manager ---

type checklistItemView struct {
	ID        int
	Question  string
	InputType string
	Options   string
}

type assignableItemView struct {
	ID       int
	Question string
	Assigned bool
}

type employeeAssignmentView struct {
	Username string
	Items    []assignableItemView
}

type managerPageData struct {
	Username  string
	Error     string
	Success   string
	Items     []checklistItemView
	Employees []employeeAssignmentView
	Exports   []string
	HasLogo   bool
}

func (s *server) managerPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, _ := s.sessionFrom(r)

	items, err := s.checklist.List()
	if err != nil {
		s.storageError(w, "load checklist", err)
		return
	}
	employees, err := s.users.Employees()
	if err != nil {
		s.storageError(w, "load users", err)
		return
	}
	assignments, err := s.assignments.All()
	if err != nil {
		s.storageError(w, "load assignments", err)
		return
	}
	exportNames, err := s.sink.ListFiles()
	if err != nil {
		s.storageError(w, "list exports", err)
		return
	}

	data := managerPageData{
		Username: sess.username,
		Error:    r.URL.Query().Get("error"),
		Success:  r.URL.Query().Get("success"),
		Exports:  exportNames,
		HasLogo:  s.sink.HasLogo(),
	}
	for _, item := range items {
		data.Items = append(data.Items, checklistItemView{
			ID:        item.ID,
			Question:  item.Question,
			InputType: string(item.InputType),
			Options:   strings.Join(item.Options, ", "),
		})
	}
	for _, name := range employees {
		assigned := map[int]bool{}
		for _, id := range assignments[name] {
			assigned[id] = true
		}
		view := employeeAssignmentView{Username: name}
		for _, item := range items {
			view.Items = append(view.Items, assignableItemView{
				ID:       item.ID,
				Question: item.Question,
				Assigned: assigned[item.ID],
			})
		}
		data.Employees = append(data.Employees, view)
	}

	s.render(w, s.managerTmpl, data)
}

func (s *server) addChecklistItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectManager(w, r, "error", "Invalid form submission")
		return
	}

	inputType, err := store.ParseInputType(r.FormValue("input_type"))
	if err != nil {
		s.redirectManager(w, r, "error", "Choose a valid input type")
		return
	}
	_, err = s.checklist.Append(r.FormValue("question"), inputType, r.FormValue("options"))
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			s.redirectManager(w, r, "error", validationMessage(err))
			return
		}
		s.storageError(w, "append checklist item", err)
		return
	}
	s.redirectManager(w, r, "success", "Checklist item added")
}

// checklistItemRoutes handles /manager/items/{index}/delete.
func (s *server) checklistItemRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/manager/items/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[1] != "delete" {
		http.NotFound(w, r)
		return
	}
	index, err := strconv.Atoi(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.deleteChecklistItem(w, r, index)
}

func (s *server) deleteChecklistItem(w http.ResponseWriter, r *http.Request, index int) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	removed, err := s.checklist.Delete(index)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.redirectManager(w, r, "error", "Checklist item no longer exists")
			return
		}
		s.storageError(w, "delete checklist item", err)
		return
	}
	// Deleting reindexes every later item, so saved assignments must
	// shift with them or they would point at the wrong questions.
	if err := s.assignments.ReconcileAfterDelete(removed.ID); err != nil {
		s.storageError(w, "reconcile assignments", err)
		return
	}
	s.redirectManager(w, r, "success", "Checklist item deleted")
}

func (s *server) saveAssignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectManager(w, r, "error", "Invalid form submission")
		return
	}
	employees, err := s.users.Employees()
	if err != nil {
		s.storageError(w, "load users", err)
		return
	}

	// A save always carries every employee's complete set; employees
	// with nothing checked get an explicit empty set.
	assignments := map[string][]int{}
	for _, name := range employees {
		ids := []int{}
		for _, raw := range r.Form["assign_"+name] {
			id, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		assignments[name] = ids
	}
	if err := s.assignments.ReplaceAll(assignments); err != nil {
		s.storageError(w, "save assignments", err)
		return
	}
	s.redirectManager(w, r, "success", "Assignments saved")
}

func (s *server) importChecklist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.redirectManager(w, r, "error", "Invalid upload form")
		return
	}
	file, header, err := r.FormFile("spreadsheet")
	if err != nil {
		s.redirectManager(w, r, "error", "Spreadsheet file is required")
		return
	}
	defer file.Close()

	items, err := exports.ParseChecklistSheet(io.LimitReader(file, maxUploadBytes), header.Filename)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			s.redirectManager(w, r, "error", validationMessage(err))
			return
		}
		s.storageError(w, "parse checklist upload", err)
		return
	}
	// The import replaces the whole checklist, so existing assignment
	// ids no longer describe the new questions.
	if err := s.checklist.ReplaceAll(items); err != nil {
		s.storageError(w, "replace checklist", err)
		return
	}
	if err := s.assignments.ReplaceAll(map[string][]int{}); err != nil {
		s.storageError(w, "reset assignments", err)
		return
	}
	s.redirectManager(w, r, "success", fmt.Sprintf("Imported %d checklist items", len(items)))
}

func (s *server) uploadLogo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.redirectManager(w, r, "error", "Invalid upload form")
		return
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		s.redirectManager(w, r, "error", "Logo file is required")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.redirectManager(w, r, "error", "Unable to read logo file")
		return
	}
	if err := s.sink.SetLogo(raw); err != nil {
		if errors.Is(err, store.ErrValidation) {
			s.redirectManager(w, r, "error", validationMessage(err))
			return
		}
		s.storageError(w, "save logo", err)
		return
	}
	s.redirectManager(w, r, "success", "Report logo saved")
}

// --- employee ---

type assignedItemView struct {
	ID        int
	Question  string
	InputType string
	Options   []string
}

type employeePageData struct {
	Username string
	Error    string
	Success  string
	Items    []assignedItemView
	Exports  []string
}

func (s *server) employeePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, _ := s.sessionFrom(r)

	items, err := s.assignedItems(sess.username)
	if err != nil {
		s.storageError(w, "load assigned checklist", err)
		return
	}
	exportNames, err := s.sink.ListFiles()
	if err != nil {
		s.storageError(w, "list exports", err)
		return
	}

	data := employeePageData{
		Username: sess.username,
		Error:    r.URL.Query().Get("error"),
		Success:  r.URL.Query().Get("success"),
		Exports:  exportNames,
	}
	for _, item := range items {
		data.Items = append(data.Items, assignedItemView{
			ID:        item.ID,
			Question:  item.Question,
			InputType: string(item.InputType),
			Options:   item.Options,
		})
	}
	s.render(w, s.employeeTmpl, data)
}

// assignedItems returns the checklist items assigned to a user, in
// checklist order.
func (s *server) assignedItems(username string) ([]store.ChecklistItem, error) {
	items, err := s.checklist.List()
	if err != nil {
		return nil, err
	}
	ids, err := s.assignments.Get(username)
	if err != nil {
		return nil, err
	}
	assigned := map[int]bool{}
	for _, id := range ids {
		assigned[id] = true
	}
	selected := []store.ChecklistItem{}
	for _, item := range items {
		if assigned[item.ID] {
			selected = append(selected, item)
		}
	}
	return selected, nil
}

func (s *server) submitAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectEmployee(w, r, "error", "Invalid form submission")
		return
	}
	sess, _ := s.sessionFrom(r)

	items, err := s.assignedItems(sess.username)
	if err != nil {
		s.storageError(w, "load assigned checklist", err)
		return
	}
	if len(items) == 0 {
		s.redirectEmployee(w, r, "error", "No checklist items are assigned to you")
		return
	}

	responses := make([]exports.Response, 0, len(items))
	for _, item := range items {
		responses = append(responses, exports.Response{
			Question: item.Question,
			Answer:   strings.TrimSpace(r.FormValue(fmt.Sprintf("answer_%d", item.ID))),
		})
	}

	filename, err := s.sink.Submit(r.FormValue("client"), r.FormValue("audit_period"), responses)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			s.redirectEmployee(w, r, "error", validationMessage(err))
			return
		}
		s.storageError(w, "save audit", err)
		return
	}
	s.logger.Info("audit submitted",
		zap.String("username", sess.username),
		zap.String("file", filename))
	s.redirectEmployee(w, r, "success", "Audit saved as "+filename)
}

// --- downloads ---

func (s *server) downloadExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filename := r.URL.Query().Get("file")
	raw, err := s.sink.Read(filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "audit export not found", http.StatusNotFound)
			return
		}
		s.storageError(w, "read export", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(raw)
}

func (s *server) downloadArchive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/x-xz")
	w.Header().Set("Content-Disposition", `attachment; filename="audit_logs.tar.xz"`)
	if err := s.sink.WriteArchive(w); err != nil {
		// Headers are already out; all that is left is to log.
		s.logger.Error("write archive", zap.Error(err))
	}
}

// --- helpers ---

func (s *server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("render template", zap.Error(err))
	}
}

func (s *server) storageError(w http.ResponseWriter, action string, err error) {
	s.logger.Error(action, zap.Error(err))
	http.Error(w, "storage unavailable, try again", http.StatusServiceUnavailable)
}

func (s *server) redirectManager(w http.ResponseWriter, r *http.Request, kind, message string) {
	http.Redirect(w, r, "/manager?"+kind+"="+url.QueryEscape(message), http.StatusFound)
}

func (s *server) redirectEmployee(w http.ResponseWriter, r *http.Request, kind, message string) {
	http.Redirect(w, r, "/employee?"+kind+"="+url.QueryEscape(message), http.StatusFound)
}

// validationMessage strips the sentinel prefix so users see only the
// detail text.
func validationMessage(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, store.ErrValidation.Error()+": "); ok {
		return cut
	}
	return msg
}
