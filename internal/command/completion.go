// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for hexdiff
_hexdiff()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* && "$cur" != s3://* ]]; then
        if [[ "$cur" == c* ]]; then
            COMPREPLY=( $(compgen -W "completion" -- "$cur") )
        fi
    fi

    if [[ ${COMP_WORDS[1]} == "completion" ]]; then
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
    fi

    case "$prev" in
        --bytes|-b)
            COMPREPLY=( $(compgen -W "2 4 8 16 32 64" -- "$cur") )
            return 0
            ;;
        --marker|-m)
            COMPREPLY=( $(compgen -W "auto color plain" -- "$cur") )
            return 0
            ;;
        --lines|-l|--aws-profile|--aws-region|--s3-endpoint)
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "--bytes -b --lines -l --marker -m --summary --aws-profile --aws-region --s3-endpoint --help --version" -- "$cur") )
        return 0
    fi

    COMPREPLY+=( $(compgen -f -- "$cur") )
    return 0
}

complete -o filenames -F _hexdiff hexdiff
`

const zshCompletionScript = `#compdef hexdiff

_hexdiff() {
  if [[ $words[2] == completion ]]; then
    _arguments '2: :((bash zsh))'
    return
  fi

  _arguments -C \
    '(-b --bytes)'{-b,--bytes}'[bytes per line]:bytes:(2 4 8 16 32 64)' \
    '(-l --lines)'{-l,--lines}'[lines per page]:lines' \
    '(-m --marker)'{-m,--marker}'[mismatch marking]:marker:(auto color plain)' \
    '--summary[print a difference summary]' \
    '--aws-profile[AWS profile]:profile' \
    '--aws-region[AWS region]:region' \
    '--s3-endpoint[S3-compatible endpoint]:url' \
    '(-v --version)'{-v,--version}'[version info]' \
    '1:file1:_files' \
    '2:file2:_files'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _hexdiff hexdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	_, w, ew := streams(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		fmt.Fprintln(ew, "usage: hexdiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "hexdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
