package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/pflag"
)

// EndpointValue collects every token given for the endpoint option so that
// ParseEndpoint can reject repeats.
type EndpointValue struct {
	tokens []string
}

func (v *EndpointValue) String() string {
	return strings.Join(v.tokens, ",")
}

// Set records one token.
func (v *EndpointValue) Set(s string) error {
	v.tokens = append(v.tokens, s)
	return nil
}

// Type names the value in usage output.
func (v *EndpointValue) Type() string {
	return "uri"
}

// Tokens returns a copy of the collected tokens.
func (v *EndpointValue) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Values is the validated result of parsing the command line.
type Values struct {
	Input    string
	Output   string
	Endpoint *url.URL
	Model    string

	// EndpointSet and ModelSet report whether the value came from a flag
	// rather than the built-in default.
	EndpointSet bool
	ModelSet    bool

	ConfigFile string
	EnvFile    string
}

// Flags binds the enricher options to a flag set.
type Flags struct {
	fs *pflag.FlagSet

	input      string
	output     string
	model      string
	configFile string
	envFile    string
	endpoint   EndpointValue
}

// Bind registers the enricher options on fs.
func Bind(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.input, InputFlag, "i", "", "Input file path")
	fs.StringVarP(&f.output, OutputFlag, "o", "", "Output file path (default <input>"+OutputSuffix+")")
	fs.VarP(&f.endpoint, EndpointFlag, "e", "OpenAI API endpoint")
	fs.Lookup(EndpointFlag).DefValue = DefaultEndpoint
	fs.StringVarP(&f.model, ModelFlag, "m", DefaultModel, "OpenAI model to use")
	fs.StringVarP(&f.configFile, ConfigFlag, "c", "", "YAML profile with endpoint, model and prompt defaults")
	fs.StringVar(&f.envFile, EnvFileFlag, "", "Path to .env file (default: .env in current directory)")

	return f
}

// Values validates the parsed flags. It must be called after the flag set
// has been parsed. Either every option resolves or an error is returned.
func (f *Flags) Values() (Values, error) {
	input, err := ParsePath(InputFlag, f.input)
	if err != nil {
		return Values{}, err
	}

	v := Values{
		Input:      input,
		Output:     DefaultOutput(input),
		ConfigFile: strings.TrimSpace(f.configFile),
		EnvFile:    strings.TrimSpace(f.envFile),
	}

	if f.fs.Changed(OutputFlag) {
		if v.Output, err = ParsePath(OutputFlag, f.output); err != nil {
			return Values{}, err
		}
	}

	tokens := []string{DefaultEndpoint}
	if f.fs.Changed(EndpointFlag) {
		tokens = f.endpoint.Tokens()
		v.EndpointSet = true
	}
	if v.Endpoint, err = ParseEndpoint(tokens); err != nil {
		return Values{}, err
	}

	if v.Model, err = ParseModel(f.model); err != nil {
		return Values{}, err
	}
	v.ModelSet = f.fs.Changed(ModelFlag)

	return v, nil
}
