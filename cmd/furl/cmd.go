package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/dubizzle/furl"
	"github.com/dubizzle/furl/internal/log"
)

// strictEnv enables strict mode when the --strict flag is not given.
const strictEnv = "FURL_STRICT"

type config struct {
	join        []string
	addPath     []string
	addArgs     []string
	setArgs     []string
	rmArgs      []string
	fragment    string
	fragmentSet bool
	strict      bool
	json        bool
	asciiHost   bool
	debug       bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	var cfg config
	cfg.strict, _ = strconv.ParseBool(os.Getenv(strictEnv))

	cmd := &cobra.Command{
		Use:   "furl [flags] <url>",
		Short: "Parse, modify and print URLs",
		Long: `furl parses the URL, applies mutations in the following order and prints the result:

  1. --join resolves references against the URL;
  2. --add-path joins paths to the URL path;
  3. --add-arg appends query parameters, --set-arg replaces them in place;
  4. --remove-arg removes query parameters;
  5. --fragment replaces the fragment.

Query parameters are given as key=value or a bare key.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.fragmentSet = cmd.Flags().Changed("fragment")
			return errtrace.Wrap(run(&cfg, args[0], out))
		},
	}
	cmd.Flags().StringArrayVar(&cfg.join, "join", nil, "reference to resolve against the URL, may be repeated")
	cmd.Flags().StringArrayVar(&cfg.addPath, "add-path", nil, "encoded path to join to the URL path, may be repeated")
	cmd.Flags().StringArrayVar(&cfg.addArgs, "add-arg", nil, "query parameter to append, may be repeated")
	cmd.Flags().StringArrayVar(&cfg.setArgs, "set-arg", nil, "query parameter to set, may be repeated")
	cmd.Flags().StringSliceVar(&cfg.rmArgs, "remove-arg", nil, "query keys to remove")
	cmd.Flags().StringVar(&cfg.fragment, "fragment", "", "encoded fragment to set")
	cmd.Flags().BoolVar(&cfg.strict, "strict", cfg.strict, "report improperly encoded input (env "+strictEnv+")")
	cmd.Flags().BoolVar(&cfg.json, "json", false, "print URL components as JSON")
	cmd.Flags().BoolVar(&cfg.asciiHost, "ascii-host", false, "print internationalized host in Punycode")
	cmd.Flags().BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	return cmd
}

func run(cfg *config, raw string, out io.Writer) error {
	logger := log.Def
	if cfg.debug {
		logger = log.Dev
	}
	opts := &furl.Options{
		Strict: cfg.strict,
		Logger: logger,
	}

	u, err := furl.New(raw, opts)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.Debug("URL parsed", slog.Any("url", u))

	for _, ref := range cfg.join {
		if err := u.Join(ref); err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, p := range cfg.addPath {
		u.Path().Add(furl.PathString(p))
	}
	if len(cfg.addArgs) > 0 {
		params, err := parseArgs(cfg.addArgs)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.Query().Add(params)
	}
	if len(cfg.setArgs) > 0 {
		params, err := parseArgs(cfg.setArgs)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.Query().Set(params)
	}
	if len(cfg.rmArgs) > 0 {
		u.Query().Remove(cfg.rmArgs...)
	}
	if cfg.fragmentSet {
		u.SetFragment(cfg.fragment)
	}
	logger.Debug("URL modified", slog.Any("url", u))

	ropts := &furl.RenderOptions{ASCIIHost: cfg.asciiHost}
	if cfg.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errtrace.Wrap(enc.Encode(newBreakdown(u, ropts)))
	}
	_, err = fmt.Fprintln(out, u.Render(ropts))
	return errtrace.Wrap(err)
}

// parseArgs parses "key=value" and bare "key" flag values.
// Keys and values are taken as is, without decoding.
func parseArgs(args []string) (furl.Params, error) {
	params := make(furl.Params, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		switch {
		case k == "":
			return nil, errtrace.Wrap(furl.NewInvalidArgumentError("empty query key in %q", arg))
		case ok:
			params = append(params, furl.KV(k, v))
		default:
			params = append(params, furl.Key(k))
		}
	}
	return params, nil
}

type breakdown struct {
	URL      string       `json:"url"`
	Scheme   string       `json:"scheme,omitempty"`
	Username *string      `json:"username,omitempty"`
	Password *string      `json:"password,omitempty"`
	Host     string       `json:"host,omitempty"`
	Port     uint16       `json:"port,omitempty"`
	Netloc   string       `json:"netloc,omitempty"`
	Path     string       `json:"path"`
	Segments []string     `json:"segments"`
	Query    []furl.Param `json:"query"`
	Fragment string       `json:"fragment,omitempty"`
}

func newBreakdown(u *furl.URL, opts *furl.RenderOptions) *breakdown {
	b := &breakdown{
		URL:      u.Render(opts),
		Scheme:   u.Scheme(),
		Host:     u.Host(),
		Netloc:   u.RenderNetloc(opts),
		Path:     u.Path().String(),
		Segments: u.Path().Segments(),
		Query:    u.Args(),
		Fragment: u.Fragment().String(),
	}
	if opts.WantASCIIHost() {
		if host, err := u.ASCIIHost(); err == nil {
			b.Host = host
		}
	}
	if user, ok := u.Username(); ok {
		b.Username = &user
	}
	if pass, ok := u.Password(); ok {
		b.Password = &pass
	}
	if port, ok := u.Port(); ok {
		b.Port = port
	}
	return b
}
