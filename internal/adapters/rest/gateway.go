package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// Login authenticates and returns the user profile.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	body := map[string]string{"username": username, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InitialInfo refreshes the profile and record counts for a known user.
func (c *Client) InitialInfo(ctx context.Context, username string) (*models.User, *models.Quantity, error) {
	var out struct {
		User     models.User     `json:"user"`
		Quantity models.Quantity `json:"quantity"`
	}
	body := map[string]string{"username": username}
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/initial", body, &out); err != nil {
		return nil, nil, err
	}
	return &out.User, &out.Quantity, nil
}

// CreateVisit uploads one visit, from a direct save or a queue drain, and
// copies the server-assigned id back onto the record.
func (c *Client) CreateVisit(ctx context.Context, v *models.Visit) error {
	var created models.Visit
	if err := c.doJSON(ctx, http.MethodPost, "/api/visits", v, &created); err != nil {
		return err
	}
	if created.ID != "" {
		v.ID = created.ID
	}
	return nil
}

// DeleteVisit removes a synced visit by server id.
func (c *Client) DeleteVisit(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/visits/"+pathEscape(id), nil, nil)
}

// ListVisits returns the remote visits recorded by the user's DNI.
func (c *Client) ListVisits(ctx context.Context, dni string) ([]models.Visit, error) {
	var visits []models.Visit
	if err := c.doJSON(ctx, http.MethodGet, "/api/visits/"+pathEscape(dni), nil, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// Quantity returns the remote-confirmed record counts for the user.
func (c *Client) Quantity(ctx context.Context, userID string) (*models.Quantity, error) {
	var q models.Quantity
	if err := c.doJSON(ctx, http.MethodGet, "/api/visits/quantity/"+pathEscape(userID), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateMonitor uploads one observation record.
func (c *Client) CreateMonitor(ctx context.Context, m *models.Monitor) error {
	return c.doJSON(ctx, http.MethodPost, "/api/monitors", m, nil)
}

// UpdateMonitor replays an edited observation.
func (c *Client) UpdateMonitor(ctx context.Context, id string, m *models.Monitor) error {
	return c.doJSON(ctx, http.MethodPut, "/api/monitors/"+pathEscape(id), m, nil)
}

// DeleteMonitor removes a synced observation by server id.
func (c *Client) DeleteMonitor(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/monitors/"+pathEscape(id), nil, nil)
}

// ListMonitors returns the user's remote observations.
func (c *Client) ListMonitors(ctx context.Context, userID string) ([]models.Monitor, error) {
	var monitors []models.Monitor
	if err := c.doJSON(ctx, http.MethodGet, "/api/monitors/"+pathEscape(userID), nil, &monitors); err != nil {
		return nil, err
	}
	return monitors, nil
}

// ListSchools returns the full school directory.
func (c *Client) ListSchools(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	if err := c.doJSON(ctx, http.MethodGet, "/api/schools", nil, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// CreateSchool registers a new school.
func (c *Client) CreateSchool(ctx context.Context, s *models.School) error {
	return c.doJSON(ctx, http.MethodPost, "/api/schools", s, nil)
}

// ListTeachers returns the teachers attached to a school.
func (c *Client) ListTeachers(ctx context.Context, schoolCode string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	path := "/api/teachers?school=" + pathEscape(schoolCode)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// CreateTeacher registers a new teacher.
func (c *Client) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	return c.doJSON(ctx, http.MethodPost, "/api/teachers", t, nil)
}

// ListDirectors returns the directors attached to a school.
func (c *Client) ListDirectors(ctx context.Context, schoolCode string) ([]models.Director, error) {
	var directors []models.Director
	path := "/api/directivos?school=" + pathEscape(schoolCode)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &directors); err != nil {
		return nil, err
	}
	return directors, nil
}

// CreateDirector registers a new director.
func (c *Client) CreateDirector(ctx context.Context, d *models.Director) error {
	return c.doJSON(ctx, http.MethodPost, "/api/directivos", d, nil)
}

// ListUsers returns every application user (admin).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user (admin).
func (c *Client) CreateUser(ctx context.Context, u *models.User, password string) error {
	body := struct {
		models.User
		Password string `json:"password"`
	}{User: *u, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/api/users/register", body, nil)
}

// UpdateUser updates an existing user (admin).
func (c *Client) UpdateUser(ctx context.Context, id string, u *models.User) error {
	return c.doJSON(ctx, http.MethodPut, "/api/users/update/"+pathEscape(id), u, nil)
}

// TeacherReport returns the level distribution per rubric code.
func (c *Client) TeacherReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	f.Type = models.MonitorTypeTeacher
	var rows []models.ReportRow
	if err := c.doJSON(ctx, http.MethodPost, "/api/monitors/report", f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DirectorReport returns the sí/no distribution per rubric code.
func (c *Client) DirectorReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	f.Type = models.MonitorTypeDirector
	var rows []models.ReportRow
	if err := c.doJSON(ctx, http.MethodPost, "/api/monitors/report-directivo", f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportArchive streams the user's records ZIP into w.
func (c *Client) ExportArchive(ctx context.Context, userID string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURI+"/api/monitors/file/export/"+pathEscape(userID), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to download archive: %w", err)
	}
	return nil
}

var _ secondary.RecordGateway = (*Client)(nil)
