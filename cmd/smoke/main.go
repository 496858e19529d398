// Command smoke drives a full wizard session through the HTTP API against a
// mock OpenAI-compatible server and writes the exported files to disk.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/draft"
	"resume-builder/internal/layout"
	"resume-builder/internal/logging"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/wizard"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/ai/formatters"
	"resume-builder/pkg/infrastructure"
)

var mockReplies = map[string]interface{}{
	formatters.SuggestionsSystem: map[string]interface{}{"suggestions": []map[string]string{
		{"type": "skill", "title": "Add Docker", "description": "Containers are expected for backend roles.", "priority": "high"},
	}},
	formatters.ScoreSystem: map[string]interface{}{"score": 7, "feedback": "Solid basics, add measurable results.", "suggestions": []interface{}{}},
	formatters.EnhanceSystem: map[string]string{"enhanced": "Backend engineer shipping reliable Go services.", "explanation": "Leads with the role."},
	formatters.SkillsSystem: map[string]interface{}{"skills": []map[string]string{
		{"name": "Go", "category": "technical"}, {"name": "PostgreSQL", "category": "tool"},
	}},
}

func startMockAI() (*http.Server, string, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		reply, ok := mockReplies[req.Messages[0].Content]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		content, _ := json.Marshal(reply)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-smoke",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o",
			"choices": []map[string]interface{}{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]interface{}{"role": "assistant", "content": string(content)},
			}},
		})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logging.Logger.WithError(err).Fatal("mock ai server failed")
		}
	}()
	return srv, "http://" + ln.Addr().String() + "/v1", nil
}

type session struct {
	base string
	http *http.Client
}

func (s *session) call(method, path string, body interface{}, want int) ([]byte, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.base+path, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%s %s: status %d, want %d: %s", method, path, resp.StatusCode, want, out)
	}
	return out, nil
}

func run(ctx context.Context, outDir string) error {
	mock, aiURL, err := startMockAI()
	if err != nil {
		return err
	}
	defer mock.Shutdown(ctx)

	store := draft.NewStore(infrastructure.NewFileSlot(filepath.Join(outDir, "draft.json")))
	exporter := usecase.NewExporter(layout.NewEngine(layout.WithTimestamp(time.Now)), infrastructure.NewFPDFRenderer(), infrastructure.NewQREncoder())
	aiClient := ai.NewClient(ai.Config{APIKey: "smoke", BaseURL: aiURL, Model: "gpt-4o", Timeout: 10 * time.Second})
	h := httpadapter.NewHandler(store, wizard.New(store), exporter, aiClient, repository.NewSnapshotsRepo())
	app := httpadapter.NewApp(h, httpadapter.Options{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	go func() { _ = app.Listener(ln) }()
	defer func() { _ = app.Shutdown() }()

	s := &session{base: "http://" + ln.Addr().String(), http: &http.Client{Timeout: 30 * time.Second}}

	steps := []struct {
		method, path string
		body         interface{}
		want         int
	}{
		{"POST", "/api/wizard/role", map[string]string{"role": "developer"}, 200},
		{"POST", "/api/wizard/next", nil, 422},
		{"PUT", "/api/wizard/personal?advance=true", model.PersonalInfo{FirstName: "Test", LastName: "User", Email: "t@example.com", Title: "Engineer", GitHub: "https://github.com/test"}, 200},
		{"PUT", "/api/wizard/education?advance=true", model.Education{Degree: "B.Sc.", FieldOfStudy: "Computer Science", Institution: "State University", StartYear: model.Year(2016), EndYear: model.Year(2020)}, 200},
		{"GET", "/api/wizard/skill-suggestions", nil, 200},
		{"POST", "/api/wizard/skills", map[string]string{"name": "Go"}, 200},
		{"POST", "/api/wizard/next", nil, 200},
		{"POST", "/api/wizard/projects", wizard.ProjectInput{Title: "Pipeline", Description: "Real-time data processing.", Technologies: "Go, Kafka"}, 200},
		{"POST", "/api/wizard/next", nil, 200},
		{"POST", "/api/ai/enhance", map[string]string{"text": "I write Go.", "type": "summary", "role": "developer"}, 200},
		{"PUT", "/api/wizard/summary", map[string]string{"summary": "Backend engineer shipping reliable Go services."}, 200},
		{"POST", "/api/ai/suggestions", map[string]string{}, 200},
		{"POST", "/api/ai/score", map[string]string{}, 200},
		{"POST", "/api/wizard/complete", nil, 200},
		{"POST", "/api/draft/save", nil, 200},
		{"POST", "/api/resumes", nil, 200},
	}
	for _, st := range steps {
		body := st.body
		if st.path == "/api/resumes" {
			body = store.Current()
		}
		out, err := s.call(st.method, st.path, body, st.want)
		if err != nil {
			return err
		}
		logging.Logger.WithField("path", st.path).Debugf("ok: %s", out)
	}

	for _, tpl := range layout.Catalog() {
		id := tpl.ID
		pdf, err := s.call("POST", "/api/export/pdf", map[string]string{"templateId": string(id)}, 200)
		if err != nil {
			return err
		}
		p := filepath.Join(outDir, fmt.Sprintf("resume-%s.pdf", id))
		if err := os.WriteFile(p, pdf, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", p, len(pdf))
	}

	png, err := s.call("POST", "/api/export/qr", map[string]string{"text": "https://github.com/test"}, 200)
	if err != nil {
		return err
	}
	qrPath := filepath.Join(outDir, usecase.QRFileName)
	if err := os.WriteFile(qrPath, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", qrPath)
	return nil
}

func main() {
	logging.Init("smoke")

	outDir := filepath.Join("resume-data", "smoke")
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logging.Logger.WithError(err).Fatal("create output dir")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, outDir); err != nil {
		fmt.Printf("Smoke run failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Smoke run completed.")
}
