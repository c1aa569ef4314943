package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/krishigpt/krishi-go/internal/store"
	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/types"
	krishi "github.com/krishigpt/krishi-go/sdk"
)

func (s *Server) handleAdvisory(w http.ResponseWriter, r *http.Request) {
	var req types.AdvisoryRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.LandSize == "" || req.Location == "" || req.SoilType == "" || req.Irrigation == "" {
		s.writeError(w, r, core.NewInvalidRequestError(
			"land_size, location, soil_type and irrigation are required"))
		return
	}

	result, err := s.generator.GenerateAdvisory(r.Context(), &req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type weatherRequest struct {
	Location string `json:"location"`
	Locale   string `json:"locale"`
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	var req weatherRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Location == "" {
		s.writeError(w, r, core.NewInvalidRequestError("location is required"))
		return
	}

	forecast, err := s.generator.GetWeather(r.Context(), req.Location, krishi.Locale(req.Locale))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

type speechRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

type speechResponse struct {
	AudioBase64 string `json:"audio_base64"`
	MIMEType    string `json:"mime_type"`
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Text == "" {
		s.writeError(w, r, core.NewInvalidRequestError("text is required"))
		return
	}

	result, err := s.generator.Synthesize(r.Context(), req.Text, krishi.Locale(req.Locale))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, speechResponse{
		AudioBase64: result.AudioBase64,
		MIMEType:    result.MIMEType,
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.store.Register(req.Email, req.Name, req.Password)
	if errors.Is(err, store.ErrEmailTaken) {
		s.writeError(w, r, core.NewInvalidRequestError(err.Error()))
		return
	}
	if err != nil {
		s.writeError(w, r, core.NewInvalidRequestError(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.store.Login(req.Email, req.Password)
	if errors.Is(err, store.ErrUnknownEmail) || errors.Is(err, store.ErrWrongPassword) {
		var body errorBody
		body.Error.Kind = "auth_failed"
		body.Error.Message = err.Error()
		writeJSON(w, http.StatusUnauthorized, body)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

type feedbackRequest struct {
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	fb, err := s.store.SaveFeedback(req.UserID, req.Rating, req.Comments)
	if err != nil {
		s.writeError(w, r, core.NewInvalidRequestError(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": fb.ID})
}

type smsRequest struct {
	PhoneNumber string `json:"phone_number"`
	Crop        string `json:"crop"`
}

func (s *Server) handleSMS(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	message := fmt.Sprintf("Krishi GPT: your crop advisory for %s is ready.", req.Crop)
	rec, err := s.store.LogSMS(req.PhoneNumber, message)
	if err != nil {
		s.writeError(w, r, core.NewInvalidRequestError(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID, "message": rec.Message})
}
