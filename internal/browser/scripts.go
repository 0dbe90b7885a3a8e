package browser

import (
	"fmt"
	"strconv"
)

// The dynamic session extracts content by evaluating small scripts in the
// page, the same way the rendered DOM is reached from devtools: XPath
// through document.evaluate, CSS through querySelectorAll.

// finderJS returns an expression evaluating to the array of elements the
// locator matches.
func finderJS(locator string) string {
	q := strconv.Quote(locator)
	if isXPath(locator) {
		return `(() => {
			const out = [];
			const it = document.evaluate(` + q + `, document, null, XPathResult.ORDERED_NODE_ITERATOR_TYPE, null);
			let node = it.iterateNext();
			while (node) { out.push(node); node = it.iterateNext(); }
			return out;
		})()`
	}
	return `Array.from(document.querySelectorAll(` + q + `))`
}

// Single-element scripts fall back to "" rather than null: an absent
// element is a zero value on the Go side, not an evaluation error.
func textJS(locator string) string {
	return fmt.Sprintf(`(() => {
		const els = %s;
		return els.length ? els[0].textContent.trim() : "";
	})()`, finderJS(locator))
}

func textAllJS(locator string) string {
	return fmt.Sprintf(`(() => {
		return %s.map(el => el.textContent.trim());
	})()`, finderJS(locator))
}

func attributeJS(locator, name string) string {
	return fmt.Sprintf(`(() => {
		const els = %s;
		if (!els.length) { return ""; }
		return els[0].getAttribute(%s) || "";
	})()`, finderJS(locator), strconv.Quote(name))
}

func attributeAllJS(locator, name string) string {
	return fmt.Sprintf(`(() => {
		const out = [];
		for (const el of %s) {
			const attr = el.getAttribute(%s);
			if (attr) { out.push(attr); }
		}
		return out;
	})()`, finderJS(locator), strconv.Quote(name))
}

func existsJS(locator string) string {
	return fmt.Sprintf(`%s.length > 0`, finderJS(locator))
}

func clickJS(locator string) string {
	return fmt.Sprintf(`(() => {
		const els = %s;
		if (!els.length) { return false; }
		els[0].click();
		return true;
	})()`, finderJS(locator))
}

// mutationJS returns a promise that resolves with the locator's content on
// the first satisfying DOM mutation and rejects after timeoutMs. The
// observer disconnects on first resolution: this is a one-shot wait.
func mutationJS(locator string, all bool, timeoutMs int64) string {
	extract := `els[0].textContent.trim()`
	if all {
		extract = `els.map(el => el.textContent.trim())`
	}
	return fmt.Sprintf(`new Promise((resolve, reject) => {
		const find = () => %s;
		let els = find();
		if (els.length) { resolve(%s); return; }
		const timer = setTimeout(() => {
			observer.disconnect();
			reject(new Error("mutation wait timed out"));
		}, %d);
		const observer = new MutationObserver(() => {
			els = find();
			if (els.length) {
				observer.disconnect();
				clearTimeout(timer);
				resolve(%s);
			}
		});
		observer.observe(document, { childList: true, subtree: true });
	})`, finderJS(locator), extract, timeoutMs, extract)
}
