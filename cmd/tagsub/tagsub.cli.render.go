package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-tagsub"
	"github.com/valyala/fasttemplate"
	"gopkg.in/yaml.v3"
)

// renderOptions holds the parsed flags for the render command.
type renderOptions struct {
	template string
	dataFile string
	output   string
	paths    []string
}

// renderData is the shape of the YAML data file.
type renderData struct {
	Values     map[string]string `yaml:"values"`
	Delimiters struct {
		Left  string `yaml:"left"`
		Right string `yaml:"right"`
	} `yaml:"delimiters"`
}

// runRender interprets one template and writes the result.
func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseRenderArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitUsage
	}

	ctx := context.Background()

	name, text, err := readTemplate(ctx, opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitError
	}

	data, err := readData(opts.dataFile)
	if err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitError
	}

	engine, err := tagsub.New(
		tagsub.WithValues(data.Values),
		tagsub.WithDelimiters(data.Delimiters.Left, data.Delimiters.Right),
	)
	if err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitError
	}

	out, closer, err := openOutput(opts.output, name, stdout)
	if err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitError
	}
	if closer != nil {
		defer closer()
	}

	if err := engine.InterpretTo(ctx, out, text); err != nil {
		fmt.Fprintln(stderr, MsgErrorPrefix+err.Error())
		return ExitError
	}
	return ExitOK
}

// parseRenderArgs parses render command flags.
func parseRenderArgs(args []string) (*renderOptions, error) {
	opts := &renderOptions{
		template: FlagDefaultTemplate,
		output:   FlagDefaultOutput,
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		takeValue := func() (string, error) {
			i++
			if i >= len(args) {
				return "", fmt.Errorf("%s: %s", ErrMsgMissingFlagValue, flag)
			}
			return args[i], nil
		}

		var err error
		switch flag {
		case FlagTemplate, FlagTemplateShort:
			opts.template, err = takeValue()
		case FlagData, FlagDataShort:
			opts.dataFile, err = takeValue()
		case FlagOutput, FlagOutputShort:
			opts.output, err = takeValue()
		case FlagPath, FlagPathShort:
			var dir string
			dir, err = takeValue()
			opts.paths = append(opts.paths, dir)
		default:
			err = fmt.Errorf("%s: %s", ErrMsgUnknownFlag, flag)
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// readTemplate resolves the template text and its base name. With a search
// path configured, the -t value is a template name resolved through a
// FileSource; otherwise it is a file path or - for stdin.
func readTemplate(ctx context.Context, opts *renderOptions, stdin io.Reader) (string, string, error) {
	if len(opts.paths) > 0 {
		src := tagsub.NewFileSource(opts.paths...)
		text, err := src.Load(ctx, opts.template)
		if err != nil {
			return "", "", err
		}
		return baseName(opts.template), text, nil
	}

	if opts.template == FlagDefaultTemplate {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return StdinTemplateName, string(content), nil
	}

	content, err := os.ReadFile(opts.template)
	if err != nil {
		return "", "", err
	}
	return baseName(opts.template), string(content), nil
}

// readData loads and parses the YAML data file, if any.
func readData(path string) (*renderData, error) {
	data := &renderData{}
	if path == "" {
		return data, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, data); err != nil {
		return nil, err
	}
	return data, nil
}

// openOutput returns the writer for the rendered result. A path of - means
// stdout. File paths may contain {name}, expanded to the template's base
// name.
func openOutput(path, name string, stdout io.Writer) (io.Writer, func(), error) {
	if path == FlagDefaultOutput {
		return stdout, nil, nil
	}

	expanded := fasttemplate.ExecuteStringStd(path, OutputTagStart, OutputTagEnd,
		map[string]interface{}{OutputTagName: name})

	fi, err := os.Create(expanded)
	if err != nil {
		return nil, nil, err
	}
	return fi, func() { _ = fi.Close() }, nil
}

// baseName strips the directory and extension from a template reference.
func baseName(ref string) string {
	base := filepath.Base(ref)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
