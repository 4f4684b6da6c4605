package builders

import (
	"git.home.luguber.info/inful/refdocs/internal/catalog"
	"git.home.luguber.info/inful/refdocs/internal/pages"
)

const selfArg = "self"

// classArguments documents a class's constructor arguments, in declaration
// order and without the implicit self reference.
//
// Docs come from the attribute docstrings of the class and its ancestors, then
// from the entry's additional attribute aliases, then from env.DefaultArgs.
// Ancestor attributes that are not constructor arguments of this class are
// ignored.
func classArguments(env Env, class *catalog.Class, aliases map[string][]string) ([]pages.Argument, error) {
	docs, err := catalog.AttributeDocs(env.Classes, class)
	if err != nil {
		return nil, err
	}

	args := make([]pages.Argument, 0, len(class.Init.AllArgs))
	for _, name := range class.Init.AllArgs {
		if name == selfArg {
			continue
		}
		arg := pages.Argument{
			Name:     name,
			Required: !class.Init.HasDefault(name),
			Doc:      env.DefaultArgs[name],
		}
		if doc, ok := docs[name]; ok {
			arg.Doc = doc
		} else {
			for _, alias := range aliases[name] {
				if doc, ok := docs[alias]; ok {
					arg.Doc = doc
					break
				}
			}
		}
		args = append(args, arg)
	}
	return args, nil
}
