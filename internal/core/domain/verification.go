package domain

// Verification is an audited ad screenshot with AI-classified metadata.
// Records are created on upload and deleted by id; there is no update.
// ImageURL is a data URI and the record owns the only reference to it.
// Device and Format are empty when classification could not determine them.
type Verification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Site      string `json:"site"`
	URL       string `json:"url"`
	Device    string `json:"device,omitempty"`
	Format    string `json:"format,omitempty"`
	Timestamp string `json:"timestamp"`
	ImageURL  string `json:"imageUrl"`
}

// VerificationDetails is the structured result of classifying an ad
// screenshot. All fields are plain strings so record construction never
// needs a null case.
type VerificationDetails struct {
	Site   string `json:"site"`
	Title  string `json:"title"`
	Device string `json:"device"`
	Format string `json:"format"`
	URL    string `json:"url"`
}

// FallbackNarrative replaces the AI analysis when the gateway fails.
const FallbackNarrative = "No se pudieron cargar los insights automáticos en este momento."

// FallbackVerificationDetails returns the fixed details substituted when
// image classification fails or returns a malformed payload.
func FallbackVerificationDetails() VerificationDetails {
	return VerificationDetails{
		Site:   "Desconocido",
		Title:  "Verificación Cargada",
		Device: "No detectado",
		Format: "Banner",
		URL:    "#",
	}
}
