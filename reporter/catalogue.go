package reporter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogueKey identifies one (severity, ID) template slot.
type catalogueKey struct {
	severity Severity
	id       int
}

// Catalogue maps (severity, ID) to a format template. Templates use
// positional substitutions "%1%", "%2%", ... Built-in English templates are
// loaded first; an optional overlay file may override or add entries.
type Catalogue struct {
	templates map[catalogueKey]string
}

// NewCatalogue returns a Catalogue pre-populated with the built-in English
// templates (spec §4.2).
func NewCatalogue() *Catalogue {
	c := &Catalogue{templates: make(map[catalogueKey]string, len(builtinTemplates))}
	for k, v := range builtinTemplates {
		c.templates[k] = v
	}
	return c
}

var builtinTemplates = map[catalogueKey]string{
	{Error, 1000}: "Failed to open the input.",
	{Error, 1001}: "Failed to decode the input using '%1%'.",
	{Error, 1002}: "The input isn't encoded in '%1%'.",

	{Error, 1100}: "Unexpected EOF found in preprocessor directive.",
	{Error, 1101}: "Unexpected token found in preprocessor directive name.",
	{Error, 1103}: "Occurred due to #error.",
	{Error, 1104}: "#error: %1%",
	{Error, 1105}: "Unknown preprocessor directive.",

	{Warning, 1100}: "Occurred due to #warning.",
	{Warning, 1101}: "#warning: %1%",

	{Error, 2000}: "Invalid digit '%1%' in binary literal.",
	{Error, 2001}: "Invalid digit '%1%' in octal literal.",
	{Error, 2003}: "Invalid digit '%1%' in hexadecimal literal.",
	{Error, 2004}: "Invalid binary literal.",
	{Error, 2005}: "Invalid hexadecimal literal.",
	{Error, 2006}: "'%1%' is an invalid token.",
	{Error, 2007}: "Unexpected EOF found in comment.",
	{Error, 2008}: "Unexpected EOL found in character literal.",
	{Error, 2009}: "Unexpected EOL found in string literal.",
	{Error, 2010}: "Invalid scientific notation format.",
	{Error, 2011}: "Invalid decimal literal format.",
}

// overlayFile is the shape of both the JSON and the YAML overlay, since a
// JSON document is valid YAML flow syntax: top-level keys "error",
// "warning", "info", each mapping a stringified numeric ID to a template.
type overlayFile struct {
	Error   map[string]string `json:"error" yaml:"error"`
	Warning map[string]string `json:"warning" yaml:"warning"`
	Info    map[string]string `json:"info" yaml:"info"`
}

// LoadOverlay parses data as a message catalogue overlay and merges its
// entries on top of the existing templates (built-in or previously loaded).
// It is tried first as YAML, which also accepts the documented JSON shape
// directly; on YAML parse failure it falls back to strict JSON so a
// hand-authored overlay in either format is accepted.
func (c *Catalogue) LoadOverlay(data []byte) error {
	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		if jsonErr := json.Unmarshal(data, &overlay); jsonErr != nil {
			return fmt.Errorf("reporter: invalid catalogue overlay: %w", err)
		}
	}
	c.mergeSeverity(Error, overlay.Error)
	c.mergeSeverity(Warning, overlay.Warning)
	c.mergeSeverity(Info, overlay.Info)
	return nil
}

func (c *Catalogue) mergeSeverity(sev Severity, entries map[string]string) {
	for idStr, template := range entries {
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			continue
		}
		c.templates[catalogueKey{sev, id}] = template
	}
}

// Format looks up the template for (severity, id) and substitutes args into
// its "%1%", "%2%", ... placeholders in order. An unknown (severity, id)
// pair yields a placeholder string rather than panicking, since a missing
// catalogue entry is a deployment issue, not a programmer error.
func (c *Catalogue) Format(sev Severity, id int, args ...string) string {
	template, ok := c.templates[catalogueKey{sev, id}]
	if !ok {
		return fmt.Sprintf("<no message for %s%04d>", sev.Letter(), id)
	}
	for i, arg := range args {
		placeholder := fmt.Sprintf("%%%d%%", i+1)
		template = strings.ReplaceAll(template, placeholder, arg)
	}
	return template
}
