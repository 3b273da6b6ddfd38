// Package preview is a software rendering environment for loaded fonts.
//
// An Environment receives registration blocks from a resource.Manager,
// resolves each rule's locator back to font bytes and draws text with
// golang.org/x/image/font/opentype:
//
//	env := preview.NewEnvironment(nil)
//	manager := resource.NewManager(env)
//	env.SetResolver(manager)
//
// Rendering looks fonts up by render family only, so a renderer can never
// observe a font that is not in the currently registered block.
package preview
