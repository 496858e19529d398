package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// QRFileName is the name of every exported QR image.
const QRFileName = "resume-qr-code.png"

// FileName derives "{first}_{last}_Resume.pdf", collapsing every run of
// whitespace to one underscore and dropping leading and trailing blanks.
func FileName(p model.PersonalInfo) string {
	words := strings.Fields(p.FirstName + " " + p.LastName + " Resume.pdf")
	return strings.Join(words, "_")
}
