package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/crmkit/closeio/pkg/closeclient"
	"github.com/crmkit/closeio/pkg/closeio"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "

	// APIKeyEnvVar is the fallback environment variable for the API key.
	APIKeyEnvVar = "CLOSEIO_API_KEY"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired        = errors.New("API key is required (use --api-key, CLOSEIO_API_KEY, or 'closeio login')")
	ErrLeadIDRequired        = errors.New("lead ID is required")
	ErrOpportunityIDRequired = errors.New("opportunity ID is required")
	ErrPayloadRequired       = errors.New("payload is required (use --data or --from-file)")
	ErrInvalidPayload        = errors.New("payload must be a JSON object")
)

// createClient builds a closeio.Client from the effective CLI configuration.
// A literal key from flag or config wins; otherwise the key is resolved from
// CLOSEIO_API_KEY on every call.
func createClient() (closeio.Client, error) {
	config := &closeio.Config{
		BaseURL: viper.GetString("base-url"),
		Debug:   viper.GetBool("verbose"),
	}

	if key := viper.GetString("api-key"); key != "" {
		config.APIKey = key
	} else {
		config.APIKeyEnvVar = APIKeyEnvVar
	}

	client, err := closeclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parsePayload loads a JSON object from an inline string or a file.
func parsePayload(data, fromFile string) (closeio.Payload, error) {
	var raw []byte

	switch {
	case data != "":
		raw = []byte(data)
	case fromFile != "":
		fileData, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, fmt.Errorf("reading payload file: %w", err)
		}

		raw = fileData
	default:
		return nil, ErrPayloadRequired
	}

	var payload closeio.Payload

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	return payload, nil
}

// renderBody writes a response body in the configured output format. For
// table output, list responses (a "data" array of objects) become one row
// per item with the given columns; everything else becomes a Property/Value
// table of the top-level fields.
func renderBody(body *closeio.Body, columns []string) error {
	decoded, isJSON := body.JSON()
	if !isJSON {
		fmt.Fprintln(os.Stdout, body.String())

		return nil
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(decoded); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}

		return nil

	case OutputFormatYAML:
		encoded, err := yaml.Marshal(decoded)
		if err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}

		_, _ = os.Stdout.Write(encoded)

		return nil

	default:
		renderTable(decoded, columns)

		return nil
	}
}

func renderTable(decoded interface{}, columns []string) {
	obj, ok := decoded.(map[string]interface{})
	if !ok {
		fmt.Fprintf(os.Stdout, "%v\n", decoded)

		return
	}

	if items, ok := obj["data"].([]interface{}); ok {
		renderListTable(items, columns)

		return
	}

	renderPropertyTable(obj)
}

func renderListTable(items []interface{}, columns []string) {
	table := tablewriter.NewWriter(os.Stdout)

	headers := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, column)
	}

	table.Header(headers...)

	for _, item := range items {
		row, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		cells := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, formatCell(row[column]))
		}

		_ = table.Append(cells...)
	}

	_ = table.Render()
}

func renderPropertyTable(obj map[string]interface{}) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		_ = table.Append(key, formatCell(obj[key]))
	}

	_ = table.Render()
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return NotAvailable
	case string:
		return v
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}
