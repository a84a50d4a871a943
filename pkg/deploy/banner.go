package deploy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docserve/dsctl/pkg/config"
)

var (
	bannerTitleStyle = lipgloss.NewStyle().Bold(true)
	bannerLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bannerBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
)

// Banner renders the post-deploy confirmation block summarizing the resolved
// configuration and the service address. The signing secret is redacted
// unless showSecret is set; it is a credential, not status information.
func Banner(cfg config.Full, showSecret bool) string {
	secret := RedactSecret(cfg.OnlyOffice.Secret)
	if showSecret {
		secret = cfg.OnlyOffice.Secret
	}

	lines := []string{
		bannerTitleStyle.Render("🚀 OnlyOffice Document Server is up"),
		"",
		bannerRow("Address", cfg.Container.ServerURL()),
		bannerRow("Container", cfg.Container.Name),
		bannerRow("Image", cfg.Container.Image),
		bannerRow("JWT enabled", strconv.FormatBool(cfg.OnlyOffice.JWTEnabled)),
		bannerRow("JWT secret", secret),
		bannerRow("Allow private IPs", strconv.FormatBool(cfg.OnlyOffice.AllowPrivateIP)),
		bannerRow("Allow metadata IPs", strconv.FormatBool(cfg.OnlyOffice.AllowMetaIP)),
		bannerRow("Unauthorized storage", strconv.FormatBool(cfg.OnlyOffice.UseUnauthorizedStorage)),
	}

	return bannerBoxStyle.Render(strings.Join(lines, "\n"))
}

func bannerRow(label, value string) string {
	return fmt.Sprintf("%s %s", bannerLabelStyle.Render(fmt.Sprintf("%-21s", label+":")), value)
}

// RedactSecret keeps the first and last four characters of a secret, enough
// to recognize which key is configured without disclosing it.
func RedactSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", 8)
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
