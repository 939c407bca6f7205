// Package plugin provides the Lua plugin system for the extension core.
//
// Plugins are Lua scripts that drive the editor's extension surface: text
// mutation, typing attributes, the single-line viewport lock, and
// accessory views. A plugin is either a single .lua file or a directory
// with a plugin.json manifest and an init.lua entry point.
//
// Plugins access the editor through the global ink table:
//
//	function activate()
//	    ink.text.insert("hello", 0)
//	    ink.typing.activate("bold", true)
//	    ink.events.on("text.change", function(data)
//	        -- react to edits
//	    end)
//	end
//
// Lifecycle: Load compiles and runs the script, Activate calls its
// activate() function, Deactivate calls deactivate(), and Close releases
// the Lua state and any event subscriptions.
package plugin
