// Package dom extracts the repeatable item template from rendered widget
// markup. Markup is parsed as an HTML fragment rooted in a <div> so that
// leading <script> or <style> nodes stay in place, then queried with CSS
// selectors through goquery/cascadia.
package dom
