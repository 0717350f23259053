// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	KernelTreeNotFoundId Id = iota + 1
	MakefileNotFoundId
	VersionParseFailedId
	ConfigLoadFailedId
	HostKernelUnavailableId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // documentation for this failure
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

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

// Markdown returns the message followed by a "See also" list of links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return sb.String()
}

// Render renders the issue with the given glamour style ("dark", "light",
// "notty", "auto" or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	kernelTreeNotFoundIssue = &Issue{
		id: KernelTreeNotFoundId,
		mdMsg: `
# No kernel source tree found!

tks looks for the closest directory, starting from the current one and
walking up to the filesystem root, that contains a ` + "`.git`" + ` directory.
None was found.

## Things you can try:
- Run tks from inside a kernel checkout:
~~~
$ cd ~/src/linux
$ tks
~~~

- Or point it at one:
~~~
$ tks info --dir ~/src/linux
~~~

- Or set a default in your config file:
~~~cue
kernel_dir: "/home/me/src/linux"
~~~

- Worktrees and submodules use a ` + "`.git`" + ` file instead of a directory;
  run tks from the main checkout.`,
		extLinks: []HttpLink{"https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git"},
	}

	makefileNotFoundIssue = &Issue{
		id: MakefileNotFoundId,
		mdMsg: `
# Kernel Makefile could not be read!

The repository root was found, but its top-level ` + "`Makefile`" + ` is missing
or unreadable.

## Things you can try:
- Make sure the repository is a Linux kernel tree
- Check the file permissions:
~~~
$ ls -l Makefile
~~~

- Restore the file if it was deleted:
~~~
$ git checkout -- Makefile
~~~`,
	}

	versionParseFailedIssue = &Issue{
		id: VersionParseFailedId,
		mdMsg: `
# Kernel version header is malformed!

The first lines of the kernel ` + "`Makefile`" + ` must assign the version fields:

~~~make
VERSION = 6
PATCHLEVEL = 1
SUBLEVEL = 0
EXTRAVERSION =
NAME = Hurr durr I'ma ninja sloth
~~~

## Things you can try:
- Check that every field has an ` + "`=`" + `
- VERSION, PATCHLEVEL and SUBLEVEL must be plain decimal numbers
- Compare with the upstream file:
~~~
$ git diff HEAD -- Makefile
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

There was an error loading your tks configuration.

## Things you can try:
- Check the syntax of your config file:
~~~
$ tks config path
~~~

- Print a valid configuration to compare with:
~~~
$ tks config dump
~~~

- Check the TKS_* environment variables:
~~~
$ env | grep ^TKS_
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	hostKernelUnavailableIssue = &Issue{
		id: HostKernelUnavailableId,
		mdMsg: `
# Running kernel version unavailable!

` + "`--host`" + ` compares the tree with the running kernel, but its release
could not be read or parsed.

## Things you can try:
- Check what the system reports:
~~~
$ uname -r
~~~

- Run without the comparison:
~~~
$ tks info
~~~`,
	}

	issues = map[Id]*Issue{
		kernelTreeNotFoundIssue.Id():    kernelTreeNotFoundIssue,
		makefileNotFoundIssue.Id():      makefileNotFoundIssue,
		versionParseFailedIssue.Id():    versionParseFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		hostKernelUnavailableIssue.Id(): hostKernelUnavailableIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
