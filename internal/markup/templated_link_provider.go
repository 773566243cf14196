package markup

import "strings"

// TemplatedLinkProvider is a LinkProvider driven entirely by two
// printf-free templates, substituting placeholders rather than calling
// into a real documentation site. It exists so a test suite (or a
// YAML-described fixture file) can describe expected links declaratively
// instead of hand-writing a LinkProvider implementation per test.
//
// Recognized placeholders:
//
//	{plugin_fqcn}                   the plugin's FQCN, e.g. "ns.coll.mod"
//	{plugin_fqcn_slashes}           the FQCN with "." replaced by "/"
//	{plugin_type}                   the plugin type, e.g. "module"
//	{what}                          "option" or "return_value"
//	{entrypoint}                    the role entrypoint, or "" if none
//	{entrypoint_with_leading_dash}  "-<entrypoint>", or "" if none
//	{name_dots}                     the option/return-value name, dotted
//	{name_slashes}                  the same name, slash-separated
//	{is_current}                    "true" or "false"
type TemplatedLinkProvider struct {
	// PluginTemplate renders Module/Plugin links. Empty means no link.
	PluginTemplate string
	// OptionTemplate renders OptionName/ReturnValue links. Empty means no link.
	OptionTemplate string
}

func (t TemplatedLinkProvider) PluginLink(fqcn, pluginType string) string {
	if t.PluginTemplate == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"{plugin_fqcn}", fqcn,
		"{plugin_fqcn_slashes}", strings.ReplaceAll(fqcn, ".", "/"),
		"{plugin_type}", pluginType,
	)
	return replacer.Replace(t.PluginTemplate)
}

func (t TemplatedLinkProvider) PluginOptionLikeLink(what OptionLike, plugin *PluginIdentifier, entrypoint string, hasEntrypoint bool, link []string, isCurrentPlugin bool) string {
	if t.OptionTemplate == "" {
		return ""
	}
	whatStr := "option"
	if what == OptionLikeReturnValue {
		whatStr = "return_value"
	}
	var fqcn, pluginType string
	if plugin != nil {
		fqcn = plugin.FQCN
		pluginType = plugin.Type
	}
	epDash := ""
	if hasEntrypoint {
		epDash = "-" + entrypoint
	}
	isCurrentStr := "false"
	if isCurrentPlugin {
		isCurrentStr = "true"
	}
	replacer := strings.NewReplacer(
		"{plugin_fqcn}", fqcn,
		"{plugin_fqcn_slashes}", strings.ReplaceAll(fqcn, ".", "/"),
		"{plugin_type}", pluginType,
		"{what}", whatStr,
		"{entrypoint}", entrypoint,
		"{entrypoint_with_leading_dash}", epDash,
		"{name_dots}", strings.Join(link, "."),
		"{name_slashes}", strings.Join(link, "/"),
		"{is_current}", isCurrentStr,
	)
	return replacer.Replace(t.OptionTemplate)
}
