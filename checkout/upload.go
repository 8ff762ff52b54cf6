package checkout

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"puntogo/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var proofDir = "./static/proofpic"

// UploadProof stores the digital-payment proof image and a thumbnail for the
// review screen. The returned filename satisfies the digital-payment rule in
// place of an operation number.
func (h *Handler) UploadProof(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Proof file missing")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		log.Println("UploadProof decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Could not read image")
		return
	}

	id := utils.GenerateID(16)
	filename := id + ".jpg"
	thumbDir := filepath.Join(proofDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		log.Println("UploadProof mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Unable to save file")
		return
	}

	if err := imaging.Save(img, filepath.Join(proofDir, filename)); err != nil {
		log.Println("UploadProof save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Unable to save file")
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, filename)); err != nil {
		log.Println("UploadProof thumbnail error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"proofFile": filename,
		"proofUrl":  "/static/proofpic/" + filename,
	})
}
