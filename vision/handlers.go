package vision

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"otto/imgutil"
	"otto/utils"

	"github.com/julienschmidt/httprouter"
)

var svc = New()

type analyzeRequest struct {
	Image string `json:"image"`
}

type generateRequest struct {
	Image    string       `json:"image"`
	Prompt   string       `json:"prompt"`
	Products []ProductRef `json:"products"`
	Analysis string       `json:"analysis,omitempty"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	Analysis string `json:"analysis"`
}

// AnalyzeImage handles POST /api/analyze-image.
func AnalyzeImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Image == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	analysis, err := svc.AnalyzeRoom(r.Context(), req.Image)
	if err != nil {
		log.Println("AnalyzeImage error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to analyze image: "+err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, analysis)
}

// GenerateImage handles POST /api/generate-image.
func GenerateImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Image == "" || req.Prompt == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image and prompt are required")
		return
	}

	sizeKB := imgutil.SizeKB(req.Image)
	log.Printf("GenerateImage: received image size %dKB", sizeKB)
	if sizeKB > imgutil.MaxPayloadKB {
		utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Image too large. Please use a smaller image (max 3.5MB).")
		return
	}

	imageURL, analysis, err := svc.GenerateVisualization(r.Context(), req.Image, req.Prompt, req.Products, req.Analysis)
	if err != nil {
		log.Println("GenerateImage error:", err)
		if strings.Contains(err.Error(), "content_policy") {
			utils.RespondWithError(w, http.StatusBadRequest, "The image could not be processed due to content policy. Please try a different image.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate image: "+err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, generateResponse{
		ImageURL: imageURL,
		Analysis: analysis,
	})
}
