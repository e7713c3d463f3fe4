// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	StateCorruptId
	StateUnavailableId
	StateSaveFailedId
	ReferenceNotFoundId
	InvalidPatchId
	ExportFailedId
	PermissionDeniedId
	WatchFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for this issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const docBase = "https://github.com/plugsmith/plugsmith/blob/main/README.md"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your configuration file could not be read or does not match the schema.

## Configuration lookup (first match wins):
1. The file passed with ` + "`--config`" + `
2. ` + "`config.cue`" + ` in the plugsmith config directory
3. ` + "`config.toml`" + ` in the plugsmith config directory
4. ` + "`config.cue`" + ` in the current directory

## Things you can try:
- Print the directory plugsmith reads from:
~~~
$ plugsmith config path
~~~

- Write a fresh default configuration:
~~~
$ plugsmith config init
~~~

## Example configuration:
~~~cue
output_dir: "build"
scaffold: {
	control_token: "Control"
	separator: " + "
}
ui: color_scheme: "auto"
log: level: "info"
~~~`,
		docLinks: []HttpLink{docBase + "#configuration"},
	}

	stateCorruptIssue = &Issue{
		id: StateCorruptId,
		mdMsg: `
# Saved plugin state was unreadable!

The persisted model did not parse or failed validation, so plugsmith started
from the default model. The broken document is overwritten by the next change.

## Things you can try:
- Copy the state file somewhere safe before making another change
- Inspect it for hand edits that broke the JSON structure
- Start over deliberately:
~~~
$ plugsmith reset
~~~`,
		docLinks: []HttpLink{docBase + "#state"},
	}

	stateUnavailableIssue = &Issue{
		id: StateUnavailableId,
		mdMsg: `
# Saved plugin state could not be read!

The state directory exists but reading from it failed. plugsmith is working
on the default model for this invocation.

## Things you can try:
- Check the permissions of the state directory
- Point plugsmith at another directory:
~~~
$ plugsmith --state-dir ./.plugsmith show
~~~`,
		docLinks: []HttpLink{docBase + "#state"},
	}

	stateSaveFailedIssue = &Issue{
		id: StateSaveFailedId,
		mdMsg: `
# Changes were not saved!

The change was applied but writing the state document failed. The next
successful change saves the full model again.

## Things you can try:
- Check free disk space and the permissions of the state directory
- Run with ` + "`--verbose`" + ` to see the underlying error`,
		docLinks: []HttpLink{docBase + "#state"},
	}

	referenceNotFoundIssue = &Issue{
		id: ReferenceNotFoundId,
		mdMsg: `
# Nothing matched that id!

Operations on unknown modules, nodes, parameters or commands leave the model
unchanged.

## Things you can try:
- List the current ids:
~~~
$ plugsmith show
~~~

- Ids are generated; copy them from the output instead of guessing`,
	}

	invalidPatchIssue = &Issue{
		id: InvalidPatchId,
		mdMsg: `
# Invalid field assignment!

Fields are set with ` + "`key=value`" + ` pairs. Unknown keys and malformed
values are rejected before anything changes.

## Examples:
~~~
$ plugsmith module set <module> name=LevelTools target=Runtime
$ plugsmith node set <module> <node> "title=Spawn Actor" pure=true
$ plugsmith param set <module> <node> inputs <param> kind=float array=true
$ plugsmith command set <module> <command> hotkey=Ctrl+Alt+P
~~~

List values such as ` + "`dependencies`" + ` are comma separated.`,
	}

	exportFailedIssue = &Issue{
		id: ExportFailedId,
		mdMsg: `
# Failed to write artifacts!

The descriptor, specification or scaffold could not be written.

## Things you can try:
- Check that the output directory is writable
- Print the artifacts instead:
~~~
$ plugsmith export --stdout
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- Writing artifacts into a protected directory
- A state directory owned by another user

## Things you can try:
- Check file/directory permissions
- Use ` + "`--out`" + ` or ` + "`--state-dir`" + ` with a directory you own`,
	}

	watchFailedIssue = &Issue{
		id: WatchFailedId,
		mdMsg: `
# Watch mode stopped!

plugsmith could not keep watching the state directory for changes.

## Things you can try:
- Make sure the state directory exists:
~~~
$ plugsmith show
~~~

- On Linux, raise the inotify limits:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~`,
		extLinks: []HttpLink{"https://github.com/fsnotify/fsnotify#faq"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		stateCorruptIssue.Id():      stateCorruptIssue,
		stateUnavailableIssue.Id():  stateUnavailableIssue,
		stateSaveFailedIssue.Id():   stateSaveFailedIssue,
		referenceNotFoundIssue.Id(): referenceNotFoundIssue,
		invalidPatchIssue.Id():      invalidPatchIssue,
		exportFailedIssue.Id():      exportFailedIssue,
		permissionDeniedIssue.Id():  permissionDeniedIssue,
		watchFailedIssue.Id():       watchFailedIssue,
	}
)

// Values returns every catalogued issue ordered by id.
func Values() []*Issue {
	out := slices.Collect(maps.Values(issues))
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
