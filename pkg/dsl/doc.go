/*
Package dsl provides a fluent builder for option lists.

It is an alternative to declaring []domain.Option literals by hand or
loading a menu file, and keeps options in the order they were added.

Example usage:

	options := dsl.New()

	options.Add("Add").
		On("add", "a").
		OnKind(domain.KindInt).
		Do(sum)

	options.Add("Reset").
		On("reset").
		Returns(0)

	list, err := options.Build()
	if err != nil {
		return err
	}
	result, err := runner.New(list).Run(ctx)
*/
package dsl
