package puzzle

// Word tables for keyword filtering and grid backfill. The stopword set is
// the common-English filter applied during keyword extraction; the filler
// vocabulary supplies the grid's decoy words and keeps to the noir register
// of the story.

var stopwords = map[string]bool{
	"a": true, "able": true, "about": true, "above": true, "act": true, "add": true, "afraid": true, "after": true, "again": true, "against": true,
	"age": true, "ago": true, "agree": true, "air": true, "all": true, "allow": true, "also": true, "always": true, "am": true, "among": true,
	"an": true, "and": true, "anger": true, "animal": true, "answer": true, "any": true, "appear": true, "apple": true, "are": true, "area": true,
	"arm": true, "arrange": true, "arrive": true, "art": true, "as": true, "ask": true, "at": true, "atom": true, "baby": true, "back": true,
	"bad": true, "ball": true, "band": true, "bank": true, "bar": true, "base": true, "basic": true, "bat": true, "be": true, "bear": true,
	"beat": true, "beauty": true, "bed": true, "been": true, "before": true, "began": true, "begin": true, "behind": true, "believe": true, "bell": true,
	"best": true, "better": true, "between": true, "big": true, "bird": true, "bit": true, "black": true, "block": true, "blood": true, "blow": true,
	"blue": true, "board": true, "boat": true, "body": true, "bone": true, "book": true, "born": true, "both": true, "bottom": true, "bought": true,
	"box": true, "boy": true, "branch": true, "bread": true, "break": true, "bridge": true, "bright": true, "bring": true, "broad": true, "broke": true,
	"brother": true, "brought": true, "brown": true, "build": true, "burn": true, "busy": true, "but": true, "buy": true, "by": true, "call": true,
	"came": true, "camp": true, "can": true, "capital": true, "captain": true, "car": true, "card": true, "care": true, "carry": true, "case": true,
	"cat": true, "catch": true, "caught": true, "cause": true, "cell": true, "cent": true, "center": true, "century": true, "certain": true, "chair": true,
	"chance": true, "change": true, "character": true, "charge": true, "chart": true, "check": true, "chick": true, "chief": true, "child": true, "children": true,
	"choose": true, "chord": true, "circle": true, "city": true, "claim": true, "class": true, "clean": true, "clear": true, "climb": true, "clock": true,
	"close": true, "clothe": true, "cloud": true, "coast": true, "coat": true, "cold": true, "collect": true, "colony": true, "color": true, "column": true,
	"come": true, "common": true, "company": true, "compare": true, "complete": true, "condition": true, "connect": true, "consider": true, "consonant": true, "contain": true,
	"continent": true, "continue": true, "control": true, "cook": true, "cool": true, "copy": true, "corn": true, "corner": true, "correct": true, "cost": true,
	"cotton": true, "could": true, "count": true, "country": true, "course": true, "cover": true, "cow": true, "crease": true, "create": true, "crop": true,
	"cross": true, "crowd": true, "cry": true, "current": true, "cut": true, "dad": true, "dance": true, "danger": true, "dark": true, "day": true,
	"dead": true, "deal": true, "dear": true, "death": true, "decide": true, "decimal": true, "deep": true, "degree": true, "depend": true, "describe": true,
	"desert": true, "design": true, "determine": true, "develop": true, "dictionary": true, "did": true, "die": true, "differ": true, "difficult": true, "direct": true,
	"discuss": true, "distant": true, "divide": true, "division": true, "do": true, "doctor": true, "does": true, "dog": true, "dollar": true, "don't": true,
	"done": true, "door": true, "double": true, "down": true, "draw": true, "dream": true, "dress": true, "drink": true, "drive": true, "drop": true,
	"dry": true, "duck": true, "during": true, "each": true, "ear": true, "early": true, "earth": true, "ease": true, "east": true, "eat": true,
	"edge": true, "effect": true, "egg": true, "eight": true, "either": true, "electric": true, "element": true, "else": true, "end": true, "enemy": true,
	"energy": true, "engine": true, "enough": true, "enter": true, "equal": true, "equate": true, "especially": true, "even": true, "evening": true, "event": true,
	"ever": true, "every": true, "exact": true, "example": true, "except": true, "excite": true, "exercise": true, "expect": true, "experience": true, "experiment": true,
	"eye": true, "face": true, "fact": true, "fair": true, "fall": true, "family": true, "famous": true, "far": true, "farm": true, "fast": true,
	"fat": true, "father": true, "favor": true, "fear": true, "feed": true, "feel": true, "feet": true, "fell": true, "felt": true, "few": true,
	"field": true, "fig": true, "fight": true, "figure": true, "fill": true, "final": true, "find": true, "fine": true, "finger": true, "finish": true,
	"fire": true, "first": true, "fish": true, "fit": true, "five": true, "flat": true, "floor": true, "flow": true, "flower": true, "fly": true,
	"follow": true, "food": true, "foot": true, "for": true, "force": true, "forest": true, "form": true, "forward": true, "found": true, "four": true,
	"fraction": true, "free": true, "fresh": true, "friend": true, "from": true, "front": true, "fruit": true, "full": true, "fun": true, "game": true,
	"garden": true, "gas": true, "gather": true, "gave": true, "general": true, "gentle": true, "get": true, "girl": true, "give": true, "glad": true,
	"glass": true, "go": true, "gold": true, "gone": true, "good": true, "got": true, "govern": true, "grand": true, "grass": true, "gray": true,
	"great": true, "green": true, "grew": true, "ground": true, "group": true, "grow": true, "guess": true, "guide": true, "gun": true, "had": true,
	"hair": true, "half": true, "hand": true, "happen": true, "happy": true, "hard": true, "has": true, "hat": true, "have": true, "he": true,
	"head": true, "hear": true, "heard": true, "heart": true, "heat": true, "heavy": true, "held": true, "help": true, "her": true, "here": true,
	"high": true, "hill": true, "him": true, "his": true, "history": true, "hit": true, "hold": true, "hole": true, "home": true, "hope": true,
	"horse": true, "hot": true, "hour": true, "house": true, "how": true, "huge": true, "human": true, "hundred": true, "hunt": true, "hurry": true,
	"i": true, "ice": true, "idea": true, "if": true, "imagine": true, "in": true, "inch": true, "include": true, "indicate": true, "industry": true,
	"insect": true, "instant": true, "instrument": true, "interest": true, "invent": true, "iron": true, "is": true, "island": true, "it": true, "job": true,
	"join": true, "joy": true, "jump": true, "just": true, "keep": true, "kept": true, "key": true, "kill": true, "kind": true, "king": true,
	"knew": true, "know": true, "lady": true, "lake": true, "land": true, "language": true, "large": true, "last": true, "late": true, "laugh": true,
	"law": true, "lay": true, "lead": true, "learn": true, "least": true, "leave": true, "led": true, "left": true, "leg": true, "length": true,
	"less": true, "let": true, "letter": true, "level": true, "lie": true, "life": true, "lift": true, "light": true, "like": true, "line": true,
	"liquid": true, "list": true, "listen": true, "little": true, "live": true, "locate": true, "log": true, "lone": true, "long": true, "look": true,
	"lost": true, "lot": true, "loud": true, "love": true, "low": true, "machine": true, "made": true, "magnet": true, "main": true, "major": true,
	"make": true, "man": true, "many": true, "map": true, "mark": true, "market": true, "mass": true, "master": true, "match": true, "material": true,
	"matter": true, "may": true, "me": true, "mean": true, "meant": true, "measure": true, "meat": true, "meet": true, "melody": true, "men": true,
	"metal": true, "method": true, "middle": true, "might": true, "mile": true, "milk": true, "million": true, "mind": true, "mine": true, "minute": true,
	"miss": true, "mix": true, "modern": true, "molecule": true, "moment": true, "money": true, "month": true, "moon": true, "more": true, "morning": true,
	"most": true, "mother": true, "motion": true, "mount": true, "mountain": true, "mouth": true, "move": true, "much": true, "multiply": true, "music": true,
	"must": true, "my": true, "name": true, "nation": true, "natural": true, "nature": true, "near": true, "necessary": true, "neck": true, "need": true,
	"neighbor": true, "never": true, "new": true, "next": true, "night": true, "nine": true, "no": true, "noise": true, "noon": true, "nor": true,
	"north": true, "nose": true, "note": true, "nothing": true, "notice": true, "noun": true, "now": true, "number": true, "numeral": true, "object": true,
	"observe": true, "occur": true, "ocean": true, "of": true, "off": true, "offer": true, "office": true, "often": true, "oh": true, "oil": true,
	"old": true, "on": true, "once": true, "one": true, "only": true, "open": true, "operate": true, "opposite": true, "or": true, "order": true,
	"organ": true, "original": true, "other": true, "our": true, "out": true, "over": true, "own": true, "oxygen": true, "page": true, "paint": true,
	"pair": true, "paper": true, "paragraph": true, "parent": true, "part": true, "particular": true, "party": true, "pass": true, "past": true, "path": true,
	"pattern": true, "pay": true, "people": true, "perhaps": true, "period": true, "person": true, "phrase": true, "pick": true, "picture": true, "piece": true,
	"pitch": true, "place": true, "plain": true, "plan": true, "plane": true, "planet": true, "plant": true, "play": true, "please": true, "plural": true,
	"poem": true, "point": true, "poor": true, "populate": true, "port": true, "pose": true, "position": true, "possible": true, "post": true, "pound": true,
	"power": true, "practice": true, "prepare": true, "present": true, "press": true, "pretty": true, "print": true, "probable": true, "problem": true, "process": true,
	"produce": true, "product": true, "proper": true, "property": true, "protect": true, "prove": true, "provide": true, "pull": true, "push": true, "put": true,
	"quart": true, "question": true, "quick": true, "quiet": true, "quite": true, "quotient": true, "race": true, "radio": true, "rail": true, "rain": true,
	"raise": true, "ran": true, "range": true, "rather": true, "reach": true, "read": true, "ready": true, "real": true, "reason": true, "receive": true,
	"record": true, "red": true, "region": true, "remember": true, "repeat": true, "reply": true, "represent": true, "require": true, "rest": true, "result": true,
	"rich": true, "ride": true, "right": true, "ring": true, "rise": true, "river": true, "road": true, "rock": true, "roll": true, "room": true,
	"root": true, "rope": true, "rose": true, "round": true, "row": true, "rub": true, "rule": true, "run": true, "safe": true, "said": true,
	"sail": true, "salt": true, "same": true, "sand": true, "sat": true, "save": true, "saw": true, "say": true, "scale": true, "school": true,
	"science": true, "score": true, "sea": true, "search": true, "season": true, "seat": true, "second": true, "section": true, "see": true, "seed": true,
	"seem": true, "segment": true, "select": true, "self": true, "sell": true, "send": true, "sense": true, "sent": true, "sentence": true, "separate": true,
	"serve": true, "set": true, "settle": true, "seven": true, "several": true, "shall": true, "shape": true, "share": true, "sharp": true, "she": true,
	"sheet": true, "shell": true, "shine": true, "ship": true, "shoe": true, "shop": true, "shore": true, "short": true, "should": true, "shoulder": true,
	"shout": true, "show": true, "side": true, "sight": true, "sign": true, "silent": true, "silver": true, "similar": true, "simple": true, "since": true,
	"sing": true, "single": true, "sister": true, "sit": true, "six": true, "size": true, "skill": true, "skin": true, "sky": true, "slave": true,
	"sleep": true, "slip": true, "slow": true, "small": true, "smell": true, "smile": true, "snow": true, "so": true, "soft": true, "soil": true,
	"soldier": true, "solution": true, "solve": true, "some": true, "son": true, "song": true, "soon": true, "sound": true, "south": true, "space": true,
	"speak": true, "special": true, "speech": true, "speed": true, "spell": true, "spend": true, "spoke": true, "spot": true, "spread": true, "spring": true,
	"square": true, "stand": true, "star": true, "start": true, "state": true, "station": true, "stay": true, "stead": true, "steam": true, "steel": true,
	"step": true, "stick": true, "still": true, "stone": true, "stood": true, "stop": true, "store": true, "story": true, "straight": true, "strange": true,
	"stream": true, "street": true, "stretch": true, "string": true, "strong": true, "student": true, "study": true, "subject": true, "substance": true, "subtract": true,
	"success": true, "such": true, "sudden": true, "suffix": true, "sugar": true, "suggest": true, "suit": true, "summer": true, "sun": true, "supply": true,
	"support": true, "sure": true, "surface": true, "surprise": true, "swim": true, "syllable": true, "symbol": true, "system": true, "table": true, "tail": true,
	"take": true, "talk": true, "tall": true, "teach": true, "team": true, "teeth": true, "tell": true, "temperature": true, "ten": true, "term": true,
	"test": true, "than": true, "thank": true, "that": true, "the": true, "their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "thick": true, "thin": true, "thing": true, "think": true, "third": true, "this": true, "those": true, "though": true, "thought": true,
	"thousand": true, "three": true, "through": true, "throw": true, "thus": true, "tie": true, "time": true, "tiny": true, "tire": true, "to": true,
	"together": true, "told": true, "tone": true, "too": true, "took": true, "tool": true, "top": true, "total": true, "touch": true, "toward": true,
	"town": true, "track": true, "trade": true, "train": true, "travel": true, "tree": true, "triangle": true, "trip": true, "trouble": true, "truck": true,
	"true": true, "try": true, "tube": true, "turn": true, "twenty": true, "two": true, "type": true, "under": true, "unit": true, "until": true,
	"up": true, "us": true, "use": true, "usual": true, "valley": true, "value": true, "vary": true, "verb": true, "very": true, "view": true,
	"village": true, "visit": true, "voice": true, "vowel": true, "wait": true, "walk": true, "wall": true, "want": true, "war": true, "warm": true,
	"was": true, "wash": true, "watch": true, "water": true, "wave": true, "way": true, "we": true, "wear": true, "weather": true, "week": true,
	"weight": true, "well": true, "went": true, "were": true, "west": true, "what": true, "wheel": true, "when": true, "where": true, "whether": true,
	"which": true, "while": true, "white": true, "who": true, "whole": true, "whose": true, "why": true, "wide": true, "wife": true, "wild": true,
	"will": true, "win": true, "wind": true, "window": true, "wing": true, "winter": true, "wire": true, "wish": true, "with": true, "woman": true,
	"women": true, "won't": true, "wonder": true, "wood": true, "word": true, "work": true, "world": true, "would": true, "write": true, "written": true,
	"wrong": true, "wrote": true, "yard": true, "year": true, "yellow": true, "yes": true, "yet": true, "you": true, "young": true, "your": true,
}

var fillerWords = []string{
	"FILE", "CASE", "LOCK", "CODE", "TIME", "FACT", "LIES", "TRUE", "DARK", "COLD",
	"RAIN", "CITY", "TOWN", "PORT", "DOCK", "SHIP", "PIER", "YARD", "ROOM", "DOOR",
	"WALL", "HALL", "ROOF", "FLOOR", "KEY", "SAFE", "NOTE", "LIST", "PLAN", "MAPS",
	"GRID", "DATA", "INFO", "TAPE", "FILM", "SHOT", "GLOW", "NEON", "LAMP", "BULB",
	"FUSE", "WIRE", "CORD", "LINE", "PATH", "ROAD", "SIGN", "POST", "MAIL", "SEAL",
	"STAMP", "COIN", "CASH", "BILL", "DEBT", "LOAN", "BOND", "DEAL", "SALE", "SOLD",
	"PAID", "COST", "RATE", "RANK", "ROLE", "TASK", "JOB", "DUTY", "WORK", "HIRE",
	"BOSS", "CHIEF", "HEAD", "LEAD", "CREW", "GANG", "TEAM", "SIDE", "ALLY", "FOE",
	"RIVAL", "HATE", "FEAR", "PAIN", "HURT", "HARM", "KILL", "DEAD", "GONE", "LOST",
	"PAST", "LATE", "SOON", "FAST", "SLOW", "WAIT", "HALT", "STOP", "EXIT", "BACK",
	"AWAY", "NEAR", "HERE", "SEEN", "SAID", "TOLD", "HELD", "KEPT", "TOOK", "GAVE",
	"MADE", "BUILT", "WORN", "TORN", "BROKE", "BENT", "BLUE", "GREY", "RED", "BLACK",
	"WHITE", "GOLD", "IRON", "STEEL", "LEAD", "ZINC", "DUST", "DIRT", "MUD", "SAND",
	"SMOKE", "HAZE", "FOG", "MIST", "RAIN", "SNOW", "WIND", "STORM", "HEAT", "COLD",
}
