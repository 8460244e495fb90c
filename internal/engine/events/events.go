// Package events maps JSX event props onto DOM events, simulates bubbling
// across the element tree and flags propagation hazards.
package events

// domEvents maps JSX handler prop names to DOM event types.
var domEvents = map[string]string{
	"onClick":       "click",
	"onDoubleClick": "dblclick",
	"onContextMenu": "contextmenu",
	"onMouseDown":   "mousedown",
	"onMouseUp":     "mouseup",
	"onMouseMove":   "mousemove",
	"onMouseEnter":  "mouseenter",
	"onMouseLeave":  "mouseleave",
	"onMouseOver":   "mouseover",
	"onMouseOut":    "mouseout",
	"onWheel":       "wheel",
	"onChange":      "change",
	"onInput":       "input",
	"onSubmit":      "submit",
	"onReset":       "reset",
	"onFocus":       "focus",
	"onBlur":        "blur",
	"onKeyDown":     "keydown",
	"onKeyUp":       "keyup",
	"onKeyPress":    "keypress",
	"onScroll":      "scroll",
	"onDragStart":   "dragstart",
	"onDrag":        "drag",
	"onDragEnd":     "dragend",
	"onDragEnter":   "dragenter",
	"onDragLeave":   "dragleave",
	"onDragOver":    "dragover",
	"onDrop":        "drop",
	"onTouchStart":  "touchstart",
	"onTouchMove":   "touchmove",
	"onTouchEnd":    "touchend",
	"onPointerDown": "pointerdown",
	"onPointerUp":   "pointerup",
	"onPointerMove": "pointermove",
}

// bubblingEvents lists DOM events that propagate to ancestors. focus, blur,
// mouseenter, mouseleave and scroll do not bubble.
var bubblingEvents = map[string]bool{
	"click":       true,
	"dblclick":    true,
	"contextmenu": true,
	"mousedown":   true,
	"mouseup":     true,
	"mousemove":   true,
	"mouseover":   true,
	"mouseout":    true,
	"wheel":       true,
	"change":      true,
	"input":       true,
	"submit":      true,
	"reset":       true,
	"keydown":     true,
	"keyup":       true,
	"keypress":    true,
	"dragstart":   true,
	"drag":        true,
	"dragend":     true,
	"dragenter":   true,
	"dragleave":   true,
	"dragover":    true,
	"drop":        true,
	"touchstart":  true,
	"touchmove":   true,
	"touchend":    true,
	"pointerdown": true,
	"pointerup":   true,
	"pointermove": true,
}

// interactiveTags are elements browsers make keyboard-operable by default.
var interactiveTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"option":   true,
	"label":    true,
	"summary":  true,
	"details":  true,
	"audio":    true,
	"video":    true,
}
