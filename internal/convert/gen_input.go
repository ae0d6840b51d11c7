package convert

import "fmt"

// Interactive inputs synthesize local component state: the IR has no notion
// of it, so each occurrence gets a fresh [value, setter] pair named from the
// node's pre-order index and wired as an inline IIFE.

func (c *Converter) genIconInput(p props, idx, indent int) string {
	c.usesState = true
	icon := MapIcon(p.str("icon", "email"))
	c.usedIcons[icon] = true
	label := p.escaped("label", "")
	placeholder := p.escaped("placeholder", "")
	name, setter := stateVar("input", idx)
	ind := indentOf(indent)

	return fmt.Sprintf(`%s{(() => {
%s  const [%s, %s] = React.useState('');
%s  return (
%s    <TextInput
%s      mode="outlined"
%s      label="%s"
%s      placeholder="%s"
%s      value={%s}
%s      onChangeText={%s}
%s      left={<TextInput.Icon icon="%s" />}
%s      style={{ marginBottom: 16 }}
%s    />
%s  );
%s})()}`, ind, ind, name, setter, ind, ind, ind, ind, label, ind, placeholder,
		ind, name, ind, setter, ind, icon, ind, ind, ind, ind)
}

func (c *Converter) genSearchInput(p props, idx, indent int) string {
	c.usesState = true
	placeholder := p.escaped("placeholder", "Search...")
	name, setter := stateVar("search", idx)
	ind := indentOf(indent)

	return fmt.Sprintf(`%s{(() => {
%s  const [%s, %s] = React.useState('');
%s  return (
%s    <Searchbar
%s      placeholder="%s"
%s      onChangeText={%s}
%s      value={%s}
%s      style={{ marginBottom: 16 }}
%s    />
%s  );
%s})()}`, ind, ind, name, setter, ind, ind, ind, placeholder, ind, setter,
		ind, name, ind, ind, ind, ind)
}

func (c *Converter) genTextInput(p props, secure bool, idx, indent int) string {
	c.usesState = true
	label := p.escaped("label", "")
	placeholder := p.escaped("placeholder", "")
	name, setter := stateVar("input", idx)
	ind := indentOf(indent)

	secureAttr := ""
	revealIcon := ""
	if secure {
		c.usedIcons["eye"] = true
		secureAttr = fmt.Sprintf("\n%s      secureTextEntry={true}", ind)
		revealIcon = fmt.Sprintf("\n%s      right={<TextInput.Icon icon=\"eye\" />}", ind)
	}

	return fmt.Sprintf(`%s{(() => {
%s  const [%s, %s] = React.useState('');
%s  return (
%s    <TextInput
%s      mode="outlined"
%s      label="%s"
%s      placeholder="%s"
%s      value={%s}
%s      onChangeText={%s}%s%s
%s      style={{ marginBottom: 16 }}
%s    />
%s  );
%s})()}`, ind, ind, name, setter, ind, ind, ind, ind, label, ind, placeholder,
		ind, name, ind, setter, secureAttr, revealIcon, ind, ind, ind, ind)
}

func (c *Converter) genCheckbox(p props, idx, indent int) string {
	c.usesState = true
	label := p.escaped("label", "Checkbox")
	name, setter := stateVar("checked", idx)
	ind := indentOf(indent)

	return fmt.Sprintf(`%s{(() => {
%s  const [%s, %s] = React.useState(false);
%s  return (
%s    <View style={{ flexDirection: 'row', alignItems: 'center', marginBottom: 12 }}>
%s      <Checkbox
%s        status={%s ? 'checked' : 'unchecked'}
%s        onPress={() => %s(!%s)}
%s      />
%s      <Text style={{ marginLeft: 8 }}>%s</Text>
%s    </View>
%s  );
%s})()}`, ind, ind, name, setter, ind, ind, ind, ind, name, ind, setter, name,
		ind, ind, label, ind, ind, ind)
}

func (c *Converter) genSwitch(p props, idx, indent int) string {
	c.usesState = true
	label := p.escaped("label", "Switch")
	name, setter := stateVar("switch", idx)
	ind := indentOf(indent)

	return fmt.Sprintf(`%s{(() => {
%s  const [%s, %s] = React.useState(false);
%s  return (
%s    <View style={{ flexDirection: 'row', alignItems: 'center', justifyContent: 'space-between', marginBottom: 12 }}>
%s      <Text>%s</Text>
%s      <Switch value={%s} onValueChange={%s} />
%s    </View>
%s  );
%s})()}`, ind, ind, name, setter, ind, ind, ind, label, ind, name, setter,
		ind, ind, ind)
}
