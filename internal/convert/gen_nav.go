package convert

import (
	"fmt"
	"strings"
)

func (c *Converter) genAppBar(p props, indent int) string {
	title := p.escaped("title", "App")
	ind := indentOf(indent)

	backAction := ""
	if p.boolean("back", false) {
		backAction = fmt.Sprintf("%s  <Appbar.BackAction onPress={() => {}} color=\"white\" />\n", ind)
	}
	searchAction := ""
	if p.boolean("search", true) {
		searchAction = fmt.Sprintf("\n%s  <Appbar.Action icon=\"magnify\" onPress={() => {}} color=\"white\" />", ind)
	}
	menuAction := ""
	if p.boolean("menu", true) {
		menuAction = fmt.Sprintf("\n%s  <Appbar.Action icon=\"dots-vertical\" onPress={() => {}} color=\"white\" />", ind)
	}

	return fmt.Sprintf(`%s<Appbar.Header elevated style={{ backgroundColor: theme.colors.primary }}>
%s%s  <Appbar.Content title="%s" titleStyle={{ color: 'white', fontWeight: '600' }} />%s%s
%s</Appbar.Header>`, ind, backAction, ind, title, searchAction, menuAction, ind)
}

func (c *Converter) genTabBar(p props, indent int) string {
	tabs := p.stringList("tabs", []string{"Home", "Search", "Profile"})

	routes := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		routes = append(routes, fmt.Sprintf("{ key: '%s', title: '%s', focusedIcon: 'home' }",
			EscapeString(strings.ToLower(tab)), EscapeString(tab)))
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<BottomNavigation
%s  navigationState={{ index: 0, routes: [%s] }}
%s  onIndexChange={() => {}}
%s  renderScene={() => null}
%s/>`, ind, ind, strings.Join(routes, ", "), ind, ind, ind)
}
