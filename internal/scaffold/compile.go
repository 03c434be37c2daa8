package scaffold

import (
	"sort"
	"strings"

	"github.com/agentx-labs/scaffoldpr/internal/params"
)

// Flags understood by the scaffolding tool.
const (
	FlagHeadless             = "--headless"
	FlagProjectType          = "--project-type"
	FlagName                 = "--name"
	FlagSkipInstall          = "--skip-install"
	FlagCustomizeHealthcheck = "--customize-health-check"
	FlagHealthcheckList      = "--health-check"
	FlagExamples             = "--with-examples"
	FlagDescription          = "--description"
	FlagAuthor               = "--author"
)

// componentFlags maps a component identifier to the tool flag enabling it.
// The table is closed; identifiers not listed here are ignored.
var componentFlags = map[string]string{
	"kafka":    "--kafka",   // message queue
	"orm":      "--orm",     // data access layer
	"grpc":     "--grpc",    // RPC layer
	"gql":      "--gql",     // query layer
	"redis":    "--redis",   // cache layer
	"swagger":  "--swagger", // API docs
	"gotDummy": "--got",     // stub HTTP client
}

// ComponentFlag returns the flag for a component identifier.
func ComponentFlag(id string) (string, bool) {
	flag, ok := componentFlags[id]
	return flag, ok
}

// KnownComponents returns the recognized component identifiers, sorted.
func KnownComponents() []string {
	ids := make([]string, 0, len(componentFlags))
	for id := range componentFlags {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CompileArgs builds the argument vector for the scaffolding tool. invoker is
// the executable that runs generators and becomes argv[0].
//
// The prefix order is fixed because the tool parses it positionally. Under
// the standard project type the component, health-check and example fields
// are ignored whatever they contain. Malformed JSON in either list field is
// returned as a *params.InputError and must halt the run.
func CompileArgs(invoker string, p *params.Parameters) ([]string, error) {
	args := []string{
		invoker,
		p.GeneratorName,
		FlagHeadless,
		FlagProjectType, string(p.ProjectType),
		FlagName, p.ProjectName,
		FlagSkipInstall,
	}

	if p.IsCustom() {
		components, err := p.DecodeComponents()
		if err != nil {
			return nil, err
		}
		for _, id := range components {
			if flag, ok := componentFlags[id]; ok {
				args = append(args, flag)
			}
		}

		if p.HasHealthcheck() {
			checks, err := p.DecodeHealthcheck()
			if err != nil {
				return nil, err
			}
			// The customize flag depends on the raw field and the list flag on
			// the decoded one, so "null" and "[ ]" yield the customize flag alone.
			args = append(args, FlagCustomizeHealthcheck)
			if len(checks) > 0 {
				// Order is kept: it drives display order in the generated service.
				args = append(args, FlagHealthcheckList, strings.Join(checks, ","))
			}
		}

		if p.WithExamples {
			args = append(args, FlagExamples)
		}
	}

	if params.Present(p.Description) {
		args = append(args, FlagDescription, p.Description)
	}
	if params.Present(p.Author) {
		args = append(args, FlagAuthor, p.Author)
	}

	return args, nil
}
