package image

import "fmt"

// FallbackContentType is the content type of synthesized placeholder images.
const FallbackContentType = "image/svg+xml"

// FallbackSVG synthesizes a minimal placeholder rendering the requested code
// as text. Served when the upstream host cannot provide the real artwork, so
// the client never sees a broken image.
func FallbackSVG(code string) []byte {
	svg := fmt.Sprintf(`<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="#f0f0f0"/>
  <text x="100" y="100" font-family="Arial" font-size="16" text-anchor="middle" fill="#666">%s</text>
  <text x="100" y="120" font-family="Arial" font-size="12" text-anchor="middle" fill="#999">Image not found</text>
</svg>`, code)
	return []byte(svg)
}
