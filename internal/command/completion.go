// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/meta"
)

const bashCompletionScript = `# bash completion for jdq
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_jdq()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "dq pp sv completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --output -o --padding --sort -s --titles -t --tldr"
  local compare="--keep-key-order -k --ignore-array-order -A --loose -L"

    case "$cmd" in
    dq)
      local opts="$common $compare --summary -S --exit-code"
            ;;
        pp)
      local opts="$common --indent -i"
            ;;
        sv)
      local opts="$common $compare --indent -i --context -C --max-lines --interactive -I --expand-all -e --width"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', offer flags
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on a document positional - complete files
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _jdq jdq
`

const zshCompletionScript = `#compdef jdq

_jdq() {
  local -a cmds
  cmds=(
    'dq:diff query'
    'pp:pretty-print a document'
    'sv:side-by-side view'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '--padding[extra spaces between table columns]:padding'
  '(-s --sort)'{-s,--sort}'[sort record fields]:fields'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a compare
  compare=(
  '(-k --keep-key-order)'{-k,--keep-key-order}'[key order is significant]'
  '(-A --ignore-array-order)'{-A,--ignore-array-order}'[match array elements across positions]'
  '(-L --loose)'{-L,--loose}'[compare primitives by rendered value]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'jdq commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    dq)
      _arguments -C \
        $common \
        $compare \
        '(-S --summary)'{-S,--summary}'[print difference counts]' \
        '--exit-code[exit 1 when documents differ]' \
        '1:left document:_files' \
        '2:right document:_files'
      ;;
    pp)
      _arguments -C \
        $common \
        '(-i --indent)'{-i,--indent}'[spaces per nesting level]:indent' \
        '1:document:_files'
      ;;
    sv)
      _arguments -C \
        $common \
        $compare \
        '(-i --indent)'{-i,--indent}'[spaces per nesting level]:indent' \
        '(-C --context)'{-C,--context}'[unchanged lines around each difference]:context' \
        '--max-lines[cap on rendered lines per side]:max' \
        '(-I --interactive)'{-I,--interactive}'[open scrollable UI]' \
        '(-e --expand-all)'{-e,--expand-all}'[show folded sections]' \
        '--width[total display width]:width' \
        '1:left document:_files' \
        '2:right document:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:document:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _jdq jdq jdq
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: jdq completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "jdq completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
