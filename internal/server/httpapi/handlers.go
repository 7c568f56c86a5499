package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/voxlate/voxlate/internal/common"
)

const dateFormat = "2006-01-02 15:04"

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type historyEntry struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Src        string `json:"src"`
	Tgt        string `json:"tgt"`
	Date       string `json:"date"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	_, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "validation_error", "username and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusConflict, "username_exists", "username already exists")
		default:
			s.logger.Error(r.Context(), "register failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "registered", "username", req.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user created"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.UserName,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {

	userID := userIDFromContext(r.Context())

	records, err := s.translations.History(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "history failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	out := make([]historyEntry, 0, len(records))
	for _, record := range records {
		out = append(out, historyEntry{
			Original:   record.OriginalText,
			Translated: record.TranslatedText,
			Src:        record.SourceLang,
			Tgt:        record.TargetLang,
			Date:       record.CreatedAt.Format(dateFormat),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {

	userID := userIDFromContext(r.Context())

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	result, err := s.translations.Translate(r.Context(), userID, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "validation_error", "no text")
		case errors.Is(err, common.ErrorInference):
			s.logger.Error(r.Context(), "inference failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "inference_error", "translation failed")
		case errors.Is(err, common.ErrorPersistence):
			s.logger.Error(r.Context(), "persistence failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "persistence_error", "could not save translation")
		case errors.Is(err, common.ErrorSynthesis):
			s.logger.Error(r.Context(), "synthesis failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "synthesis_error", "could not generate audio")
		default:
			s.logger.Error(r.Context(), "translate failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"translatedText": result.TranslatedText,
		"audioUrl":       "/audio/" + result.AudioFile,
	})
}

func (s *Server) handleUploadAudio(w http.ResponseWriter, r *http.Request) {

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no_file", "no file")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "audio_failed", "audio failed")
		return
	}

	text, err := s.transcriber.TranscribeUpload(r.Context(), raw)
	if err != nil {
		s.logger.Warn(r.Context(), "transcription failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "audio_failed", "audio failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {

	filename := r.PathValue("filename")

	data, err := s.store.Get(r.Context(), filename)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no such audio file")
			return
		}
		s.logger.Error(r.Context(), "audio fetch failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
